package npm_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/riggbuild/rigg/internal/adapters/fs"
	"github.com/riggbuild/rigg/internal/adapters/npm"
	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports/mocks"
)

func writeNpmrc(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".npmrc"), []byte(content), 0o600))
}

func TestGlobalPrefix_EnvVarWinsOverConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	writeNpmrc(t, home, "prefix=/cfg/prefix\n")

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv("npm_config_prefix").Return("/custom/prefix", true)

	locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

	assert.Equal(t, "/custom/prefix", locator.GlobalPrefixForTest())
}

func TestGlobalPrefix_BlankEnvVarFallsToConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	writeNpmrc(t, home, "registry=https://registry.npmjs.org/\nprefix=/cfg/prefix\nprefix=/ignored/second\n")

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv("npm_config_prefix").Return("   ", true)
	env.EXPECT().Platform().Return(domain.PlatformLinux).AnyTimes()
	env.EXPECT().LookupEnv("HOME").Return(home, true)

	locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

	// First prefix= line wins
	assert.Equal(t, "/cfg/prefix", locator.GlobalPrefixForTest())
}

func TestGlobalPrefix_PlatformDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, platform := range []domain.Platform{domain.PlatformLinux, domain.PlatformOSX} {
		home := t.TempDir() // no .npmrc

		env := mocks.NewMockEnvironment(ctrl)
		env.EXPECT().LookupEnv("npm_config_prefix").Return("", false)
		env.EXPECT().Platform().Return(platform).AnyTimes()
		env.EXPECT().LookupEnv("HOME").Return(home, true)

		locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

		assert.Equal(t, "/usr/local", locator.GlobalPrefixForTest(), "platform %v", platform)
	}
}

func TestGlobalPrefix_WindowsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv("npm_config_prefix").Return("", false)
	env.EXPECT().Platform().Return(domain.PlatformWindows).AnyTimes()
	env.EXPECT().LookupEnv("USERPROFILE").Return(home, true)

	locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

	assert.Equal(t, `C:\Program Files\nodejs`, locator.GlobalPrefixForTest())
}

func TestGlobalPrefix_OtherPlatformFallsToWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cwd := t.TempDir()

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv("npm_config_prefix").Return("", false)
	env.EXPECT().Platform().Return(domain.PlatformOther).AnyTimes()
	env.EXPECT().WorkingDirectory().Return(cwd).AnyTimes()

	locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

	assert.Equal(t, cwd, locator.GlobalPrefixForTest())
}

func TestGlobalPrefix_ConfigReadFailureFallsToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := filepath.Join("/", "home", "builder")
	npmrc := filepath.Join(home, ".npmrc")

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().LookupEnv("npm_config_prefix").Return("", false)
	env.EXPECT().Platform().Return(domain.PlatformLinux).AnyTimes()
	env.EXPECT().LookupEnv("HOME").Return(home, true)

	// The file exists but reading it fails; discovery must swallow the
	// error and fall through to the platform default.
	fsys := mocks.NewMockFilesystem(ctrl)
	fsys.EXPECT().FileExists(npmrc).Return(true)
	fsys.EXPECT().ReadLines(npmrc).Return(nil, errors.New("permission denied"))

	locator := npm.NewLocator(fsys, env, mocks.NewMockSettings(ctrl))

	assert.Equal(t, "/usr/local", locator.GlobalPrefixForTest())
}

func TestNpmrcPath_NoHomeUsesWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cwd := t.TempDir()

	env := mocks.NewMockEnvironment(ctrl)
	env.EXPECT().Platform().Return(domain.PlatformLinux).AnyTimes()
	env.EXPECT().LookupEnv("HOME").Return("", false)
	env.EXPECT().WorkingDirectory().Return(cwd)

	locator := npm.NewLocator(fs.NewFilesystem(), env, mocks.NewMockSettings(ctrl))

	assert.Equal(t, filepath.Join(cwd, ".npmrc"), locator.NpmrcPathForTest())
}
