package npm

// GlobalPrefixForTest exports the private globalPrefix method for testing purposes.
func (l *Locator) GlobalPrefixForTest() string {
	return l.globalPrefix()
}

// NpmrcPathForTest exports the private npmrcPath method for testing purposes.
func (l *Locator) NpmrcPathForTest() string {
	return l.npmrcPath()
}
