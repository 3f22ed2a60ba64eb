package env

// PlatformFromGOOS exposes platformFromGOOS for testing.
var PlatformFromGOOS = platformFromGOOS
