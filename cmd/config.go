package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "i18n-audit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	pagesFlagName          = "pages"
	localesFlagName        = "locales"
	includeFlagName        = "include"
	excludeFlagName        = "exclude"
	noPartialsFlagName     = "no-partials"
	noHardcodedFlagName    = "no-hardcoded"
	minLengthFlagName      = "min-length"
	excludePatternFlagName = "exclude-pattern"
	runParallelFlagName    = "parallel"
	outputFlagName         = "output"
	formatFlagName         = "format"
	thresholdFlagName      = "threshold"
	errorsOnlyFlagName     = "errors-only"
	uniqueFlagName         = "unique"
	logFileFlagName        = "log-file"
	verboseFlagName        = "verbose"

	pagesConfigKey           = "paths.pages"
	localesConfigKey         = "paths.locales"
	includeConfigKey         = "paths.include"
	excludeConfigKey         = "paths.exclude"
	includePartialsConfigKey = "paths.include_partials"
	hardcodedEnabledKey      = "hardcoded.enabled"
	minLengthConfigKey       = "hardcoded.min_length"
	excludeAllCapsConfigKey  = "hardcoded.exclude_all_caps"
	excludePatternsConfigKey = "hardcoded.exclude_patterns"
	runParallelConfigKey     = "run.parallel"
	reportOutputConfigKey    = "report.output"
	reportFormatConfigKey    = "report.format"
	checkThresholdConfigKey  = "check.threshold"

	defaultReportOutput   = "i18n-audit-report.json"
	defaultCheckThreshold = 0

	envPrefix = "I18N_AUDIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".i18n-audit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be parsed.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := m.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(pagesConfigKey, string(defaults.PagesRoot))
	viper.SetDefault(localesConfigKey, string(defaults.LocalesRoot))
	viper.SetDefault(includeConfigKey, defaults.Include)
	viper.SetDefault(excludeConfigKey, defaults.Exclude)
	viper.SetDefault(includePartialsConfigKey, defaults.IncludePartials)
	viper.SetDefault(hardcodedEnabledKey, defaults.DetectHardcoded)
	viper.SetDefault(minLengthConfigKey, defaults.Hardcoded.MinLength)
	viper.SetDefault(excludeAllCapsConfigKey, defaults.Hardcoded.ExcludeAllCaps)
	viper.SetDefault(excludePatternsConfigKey, defaults.Hardcoded.ExcludePatterns)
	viper.SetDefault(runParallelConfigKey, defaults.Parallel)
	viper.SetDefault(reportOutputConfigKey, defaultReportOutput)
	viper.SetDefault(reportFormatConfigKey, "")
	viper.SetDefault(checkThresholdConfigKey, defaultCheckThreshold)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// Reported once the command runs so it gets an exit code.
		configReadErr = fmt.Errorf("read %s: %w", configFileName, err)
	}
}

// buildConfig resolves defaults, config file, environment and flags into the
// immutable configuration of one run.
func buildConfig(cmd *cobra.Command) (m.Config, error) {
	cfg := m.Config{
		PagesRoot:       m.Path(viper.GetString(pagesConfigKey)),
		LocalesRoot:     m.Path(viper.GetString(localesConfigKey)),
		Include:         viper.GetString(includeConfigKey),
		Exclude:         viper.GetStringSlice(excludeConfigKey),
		IncludePartials: viper.GetBool(includePartialsConfigKey),
		DetectHardcoded: viper.GetBool(hardcodedEnabledKey),
		Hardcoded: m.HardcodedRules{
			MinLength:       viper.GetInt(minLengthConfigKey),
			ExcludeAllCaps:  viper.GetBool(excludeAllCapsConfigKey),
			ExcludePatterns: viper.GetStringSlice(excludePatternsConfigKey),
		},
		Parallel: viper.GetInt(runParallelConfigKey),
	}

	if noPartials, err := cmd.Flags().GetBool(noPartialsFlagName); err == nil && noPartials {
		cfg.IncludePartials = false
	}

	if noHardcoded, err := cmd.Flags().GetBool(noHardcodedFlagName); err == nil && noHardcoded {
		cfg.DetectHardcoded = false
	}

	switch {
	case strings.TrimSpace(string(cfg.PagesRoot)) == "":
		return cfg, invalidArgs(fmt.Errorf("--%s must not be empty", pagesFlagName))
	case strings.TrimSpace(cfg.Include) == "":
		return cfg, invalidArgs(fmt.Errorf("--%s must not be empty", includeFlagName))
	case cfg.Parallel < 1:
		return cfg, invalidArgs(fmt.Errorf("--%s must be at least 1, got %d", runParallelFlagName, cfg.Parallel))
	case cfg.Hardcoded.MinLength < 0:
		return cfg, invalidArgs(fmt.Errorf("--%s must not be negative, got %d", minLengthFlagName, cfg.Hardcoded.MinLength))
	}

	return cfg, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
