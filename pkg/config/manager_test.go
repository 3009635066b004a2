//go:build unit

package config

import (
	"errors"
	"os"
	"testing"

	"github.com/lerenn/gitclone/configs"
	fsmocks "github.com/lerenn/gitclone/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testConfigPath = "/home/test/.gitclone/config.yaml"

func TestManager_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "~/.gitclone/config.yaml")

	fsMock.EXPECT().ExpandPath("~/.gitclone/config.yaml").Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)
	fsMock.EXPECT().ReadFile(testConfigPath).Return([]byte("ssh: true\nclone_args: [\"--depth\", \"1\"]\n"), nil)

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.True(t, cfg.SSH)
	assert.Equal(t, "inherit", cfg.Stdio)
	assert.Equal(t, []string{"--depth", "1"}, cfg.CloneArgs)
}

func TestManager_GetConfig_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(false, nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestManager_GetConfig_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)
	fsMock.EXPECT().ReadFile(testConfigPath).Return([]byte("ssh: [unterminated"), nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_GetConfig_InvalidValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)
	fsMock.EXPECT().ReadFile(testConfigPath).Return([]byte("stdio: null-device\n"), nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrInvalidStdio)
}

func TestManager_GetConfigWithFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(false, nil)

	cfg, err := manager.GetConfigWithFallback()
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestManager_GetConfigWithFallback_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)
	fsMock.EXPECT().ReadFile(testConfigPath).Return(nil, errors.New("permission denied"))

	_, err := manager.GetConfigWithFallback()
	assert.Error(t, err)
}

func TestManager_SaveConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().WriteFileAtomic(testConfigPath, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			assert.Contains(t, string(data), "ssh: true")
			assert.Contains(t, string(data), "stdio: ignore")
			return nil
		})

	assert.NoError(t, manager.SaveConfig(Config{SSH: true, Stdio: "ignore"}))
}

func TestManager_SaveConfig_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	assert.ErrorIs(t, manager.SaveConfig(Config{Stdio: "bogus"}), ErrInvalidStdio)
}

func TestManager_Init(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(false, nil)
	fsMock.EXPECT().WriteFileAtomic(testConfigPath, configs.DefaultConfigYAML, gomock.Any()).Return(nil)

	assert.NoError(t, manager.Init(false))
}

func TestManager_Init_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)

	assert.ErrorIs(t, manager.Init(false), ErrConfigExists)
}

func TestManager_Init_Force(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, testConfigPath)

	fsMock.EXPECT().ExpandPath(testConfigPath).Return(testConfigPath, nil)
	fsMock.EXPECT().Exists(testConfigPath).Return(true, nil)
	fsMock.EXPECT().WriteFileAtomic(testConfigPath, configs.DefaultConfigYAML, gomock.Any()).Return(nil)

	assert.NoError(t, manager.Init(true))
}

func TestDefaultConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmocks.NewMockFS(ctrl)

	fsMock.EXPECT().GetHomeDir().Return("/home/test", nil)
	assert.Equal(t, testConfigPath, DefaultConfigPath(fsMock))

	fsMock.EXPECT().GetHomeDir().Return("", errors.New("no home"))
	assert.Equal(t, ".gitclone/config.yaml", DefaultConfigPath(fsMock))
}
