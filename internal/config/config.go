package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"glassui/internal/glass"
)

const (
	KeyBlurRadius     = "effect.blur-radius"
	KeyVibrancy       = "effect.vibrancy"
	KeySaturation     = "effect.saturation"
	KeyBrightnessLift = "effect.brightness-lift"
	KeyAutoUpdate     = "effect.auto-update"

	KeyPlatformBlur        = "platform.blur"
	KeyPlatformOutlineClip = "platform.outline-clip"
	KeyCornerRadius        = "platform.corner-radius"

	KeyTheme        = "theme"
	KeyFPS          = "fps"
	KeyCaptionStyle = "caption.style"
)

const (
	// DefaultFPS is the demo frame rate.
	DefaultFPS = 20
	// DefaultCornerRadius is the glass corner radius in terminal pixels.
	DefaultCornerRadius = 4

	envPrefix  = "GLASS"
	configDir  = ".glassui"
	configFile = "config.yaml"
)

// attributeKeys maps construction-time attribute names to config keys.
var attributeKeys = map[string]string{
	glass.AttrBlurRadius:     KeyBlurRadius,
	glass.AttrVibrancy:       KeyVibrancy,
	glass.AttrSaturation:     KeySaturation,
	glass.AttrBrightnessLift: KeyBrightnessLift,
	glass.AttrAutoUpdate:     KeyAutoUpdate,
}

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// userConfigPathOverride redirects SaveTheme in tests.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < GLASS_* environment < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat fetches a float configuration value, initializing on demand.
func GetFloat(key string) float64 {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetFloat64(key)
}

// Attributes exposes the effect section as construction-time glass
// attributes.
func Attributes() glass.AttributeSet {
	return attributeSet{}
}

type attributeSet struct{}

func (attributeSet) Float(name string, def float64) float64 {
	key, ok := attributeKeys[name]
	if !ok {
		return def
	}
	v, err := getViper()
	if err != nil || !v.IsSet(key) {
		return def
	}
	return v.GetFloat64(key)
}

func (attributeSet) Bool(name string, def bool) bool {
	key, ok := attributeKeys[name]
	if !ok {
		return def
	}
	v, err := getViper()
	if err != nil || !v.IsSet(key) {
		return def
	}
	return v.GetBool(key)
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: user and project config files are read on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDir, configFile), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDir, configFile)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBlurRadius, glass.DefaultBlurRadius)
	v.SetDefault(KeyVibrancy, glass.DefaultVibrancy)
	v.SetDefault(KeySaturation, glass.DefaultSaturation)
	v.SetDefault(KeyBrightnessLift, glass.DefaultBrightnessLift)
	v.SetDefault(KeyAutoUpdate, glass.DefaultAutoUpdate)
	v.SetDefault(KeyPlatformBlur, true)
	v.SetDefault(KeyPlatformOutlineClip, true)
	v.SetDefault(KeyCornerRadius, DefaultCornerRadius)
	v.SetDefault(KeyTheme, "tokyonight")
	v.SetDefault(KeyFPS, DefaultFPS)
	v.SetDefault(KeyCaptionStyle, "dark")
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages and
// initializes against an empty temp directory. The returned function undoes
// the reset and should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, configFile)))
	return reset
}

// SaveTheme persists the theme name. An existing project config is updated
// in place; otherwise the user config is written, creating ~/.glassui when
// needed. Project config directories are never created.
func SaveTheme(themeName string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: per-user directory
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func findWritableConfigPath() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		projectPath, err := findProjectConfig(wd)
		if err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	return defaultUserConfigPath()
}
