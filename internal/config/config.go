package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gubarz/deckmd/internal/parser"
)

// Config holds the application configuration
type Config struct {
	TabWidth   int    `mapstructure:"tab_width"`
	CodeIndent int    `mapstructure:"code_indent"`
	LogLevel   string `mapstructure:"log_level"`
	AltScreen  bool   `mapstructure:"alt_screen"`
	ColorH1    string `mapstructure:"color_h1"`
	ColorH2    string `mapstructure:"color_h2"`
	ColorCode  string `mapstructure:"color_code"`
	ColorQuote string `mapstructure:"color_quote"`
	ColorRule  string `mapstructure:"color_rule"`
	ColorDim   string `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	setDefaults()

	viper.SetConfigName("deckmd")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "deckmd"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("DECKMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

func setDefaults() {
	defaults := parser.DefaultOptions()

	viper.SetDefault("tab_width", defaults.TabWidth)     // Spaces per tab
	viper.SetDefault("code_indent", defaults.CodeIndent) // Columns that make a code line
	viper.SetDefault("log_level", "info")
	viper.SetDefault("alt_screen", true)
	viper.SetDefault("color_h1", "33")     // Yellow
	viper.SetDefault("color_h2", "36")     // Cyan
	viper.SetDefault("color_code", "246")  // Light gray
	viper.SetDefault("color_quote", "250") // Lighter gray
	viper.SetDefault("color_rule", "240")  // Dark gray
	viper.SetDefault("color_dim", "241")   // Footer
}

// ConfigFile returns the path of the loaded config file, if any
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// ParserOptions returns the parser layout options from config
func ParserOptions() parser.Options {
	opts := parser.Options{
		TabWidth:   GetTabWidth(),
		CodeIndent: GetCodeIndent(),
	}
	defaults := parser.DefaultOptions()
	if opts.TabWidth < 0 {
		opts.TabWidth = defaults.TabWidth
	}
	if opts.CodeIndent <= 0 {
		opts.CodeIndent = defaults.CodeIndent
	}
	return opts
}

// GetTabWidth returns the tab expansion width
func GetTabWidth() int {
	return viper.GetInt("tab_width")
}

// GetCodeIndent returns the code block indentation threshold
func GetCodeIndent() int {
	return viper.GetInt("code_indent")
}

// GetLogLevel returns the log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetAltScreen returns whether the viewer uses the alternate screen
func GetAltScreen() bool {
	return viper.GetBool("alt_screen")
}

// GetColorH1 returns the color for first level headings
func GetColorH1() string {
	return viper.GetString("color_h1")
}

// GetColorH2 returns the color for second level headings
func GetColorH2() string {
	return viper.GetString("color_h2")
}

// GetColorCode returns the color for code lines
func GetColorCode() string {
	return viper.GetString("color_code")
}

// GetColorQuote returns the color for quotes
func GetColorQuote() string {
	return viper.GetString("color_quote")
}

// GetColorRule returns the color for horizontal rules and list bullets
func GetColorRule() string {
	return viper.GetString("color_rule")
}

// GetColorDim returns the color for the footer
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetTabWidth sets the tab width at runtime
func SetTabWidth(width int) {
	viper.Set("tab_width", width)
	C.TabWidth = width
}

// SetCodeIndent sets the code indentation threshold at runtime
func SetCodeIndent(indent int) {
	viper.Set("code_indent", indent)
	C.CodeIndent = indent
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}

// SetAltScreen sets whether the viewer uses the alternate screen
func SetAltScreen(enabled bool) {
	viper.Set("alt_screen", enabled)
	C.AltScreen = enabled
}
