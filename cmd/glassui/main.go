package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"glassui/internal/config"
	"glassui/internal/debug"
	appErrors "glassui/internal/errors"
	"glassui/internal/glass"
	"glassui/internal/ui"
	"glassui/internal/ui/theme"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		return 1
	}

	fs := flag.CommandLine
	flags := registerFlags(fs)
	versionFlag := fs.Bool("version", false, "Print version information and exit")
	debugFlag := fs.Bool("debug", false, "Write a diagnostic log to ~/.glassui/debug.log")
	pickThemeFlag := fs.Bool("pick-theme", false, "Choose the theme interactively before starting")
	flag.Parse()

	if *versionFlag {
		printVersion()
		return 0
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	opts, err := computeRuntimeOptions(fs, flags, visitedFlags(fs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *pickThemeFlag {
		picked, err := promptForTheme(opts.theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if picked != opts.theme {
			opts.theme = picked
			if err := config.SaveTheme(picked); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save theme: %v\n", err)
			}
		}
	}
	if err := applyTheme(opts.theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	debug.Logf("main: starting with %+v", opts)

	appCfg := ui.Config{
		Glass:        opts.glass,
		Blur:         opts.blur,
		OutlineClip:  opts.outlineClip,
		CornerRadius: opts.cornerRadius,
		FPS:          opts.fps,
		Profile:      termenv.EnvColorProfile(),
		CaptionStyle: opts.captionStyle,
		Version:      Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) *ui.App, factory programFactory) error {
	if builder == nil {
		return fmt.Errorf("app builder is nil")
	}
	app := builder(cfg)
	if app == nil {
		return fmt.Errorf("initialize UI: app is nil")
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	blurRadius     *float64
	saturation     *float64
	brightnessLift *float64
	noVibrancy     *bool
	noAutoUpdate   *bool
	noBlur         *bool
	noOutlineClip  *bool
	cornerRadius   *float64
	theme          *string
	captionStyle   *string
	fps            *int
}

type runtimeOptions struct {
	glass        glass.Config
	blur         bool
	outlineClip  bool
	cornerRadius float64
	theme        string
	captionStyle string
	fps          int
}

// registerFlags defines the glass flags on fs with defaults taken from the
// loaded configuration.
func registerFlags(fs *flag.FlagSet) runtimeFlags {
	return runtimeFlags{
		blurRadius:     fs.Float64("blur-radius", config.GetFloat(config.KeyBlurRadius), "Platform blur radius (0 disables blur visually)"),
		saturation:     fs.Float64("saturation", config.GetFloat(config.KeySaturation), "Vibrancy saturation (1 is neutral, 0 is grayscale)"),
		brightnessLift: fs.Float64("brightness-lift", config.GetFloat(config.KeyBrightnessLift), "Vibrancy brightness lift on the 0-255 scale"),
		noVibrancy:     fs.Bool("no-vibrancy", !config.GetBool(config.KeyVibrancy), "Disable the saturation/brightness pass"),
		noAutoUpdate:   fs.Bool("no-auto-update", !config.GetBool(config.KeyAutoUpdate), "Only refresh the snapshot on resize or the refresh key"),
		noBlur:         fs.Bool("no-blur", !config.GetBool(config.KeyPlatformBlur), "Run as a host without blur support"),
		noOutlineClip:  fs.Bool("no-outline-clip", !config.GetBool(config.KeyPlatformOutlineClip), "Run as a host without rounded outline clipping"),
		cornerRadius:   fs.Float64("corner-radius", config.GetFloat(config.KeyCornerRadius), "Glass corner radius in terminal pixels"),
		theme:          fs.String("theme", config.GetString(config.KeyTheme), "Colour theme ("+strings.Join(theme.Available(), ", ")+")"),
		captionStyle:   fs.String("caption-style", config.GetString(config.KeyCaptionStyle), "Caption markdown style (dark, light, plain)"),
		fps:            fs.Int("fps", config.GetInt(config.KeyFPS), "Frames per second"),
	}
}

func visitedFlags(fs *flag.FlagSet) map[string]struct{} {
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return visited
}

// flagOverrides maps explicitly set flags to config keys. The no-* flags are
// stored inverted.
func flagOverrides(fs *flag.FlagSet, flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	set := func(name, key string, value any) {
		if flagWasExplicitlySet(fs, name, visited) {
			overrides[key] = value
		}
	}
	set("blur-radius", config.KeyBlurRadius, *flags.blurRadius)
	set("saturation", config.KeySaturation, *flags.saturation)
	set("brightness-lift", config.KeyBrightnessLift, *flags.brightnessLift)
	set("no-vibrancy", config.KeyVibrancy, !*flags.noVibrancy)
	set("no-auto-update", config.KeyAutoUpdate, !*flags.noAutoUpdate)
	set("no-blur", config.KeyPlatformBlur, !*flags.noBlur)
	set("no-outline-clip", config.KeyPlatformOutlineClip, !*flags.noOutlineClip)
	set("corner-radius", config.KeyCornerRadius, *flags.cornerRadius)
	set("theme", config.KeyTheme, strings.TrimSpace(*flags.theme))
	set("caption-style", config.KeyCaptionStyle, strings.TrimSpace(*flags.captionStyle))
	set("fps", config.KeyFPS, *flags.fps)
	return overrides
}

func computeRuntimeOptions(fs *flag.FlagSet, flags runtimeFlags, visited map[string]struct{}) (runtimeOptions, error) {
	if err := config.ApplyOverrides(flagOverrides(fs, flags, visited)); err != nil {
		return runtimeOptions{}, appErrors.New(appErrors.CodeConfigurationError, "apply flag overrides", err)
	}

	cfg := glass.DefaultConfig()
	glass.WithAttributes(config.Attributes())(&cfg)
	if cfg.BlurRadius < 0 {
		return runtimeOptions{}, appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("blur radius %g must not be negative", cfg.BlurRadius), nil)
	}

	cornerRadius := config.GetFloat(config.KeyCornerRadius)
	if cornerRadius < 0 {
		cornerRadius = 0
	}
	fps := config.GetInt(config.KeyFPS)
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return runtimeOptions{
		glass:        cfg,
		blur:         config.GetBool(config.KeyPlatformBlur),
		outlineClip:  config.GetBool(config.KeyPlatformOutlineClip),
		cornerRadius: cornerRadius,
		theme:        strings.TrimSpace(config.GetString(config.KeyTheme)),
		captionStyle: strings.TrimSpace(config.GetString(config.KeyCaptionStyle)),
		fps:          fps,
	}, nil
}

// applyTheme activates name, keeping the current theme when name is empty.
func applyTheme(name string) error {
	if name == "" {
		return nil
	}
	if theme.SetTheme(name) {
		return nil
	}
	return appErrors.New(appErrors.CodeUnknownTheme,
		fmt.Sprintf("unknown theme %q (available: %s)", name, strings.Join(theme.Available(), ", ")), nil)
}

func flagWasExplicitlySet(fs *flag.FlagSet, name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
