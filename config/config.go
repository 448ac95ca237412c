package config

import (
	"os"
	"path/filepath"
	"time"
)

// Server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Smoothing backend config
const SMOOTHING_ENDPOINT_BASE = "http://localhost:8081"
const SMOOTHING_HTTP_TIMEOUT = 30 * time.Second
const ENERGY_DATA_ENDPOINT = "/energyData"
const HOLT_WINTERS_ENDPOINT = "/holtWinters"
const OPTIMIZE_ENDPOINT = "/optimize"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Cache TTLs
const ENERGY_DATA_CACHE_TTL = 30 * time.Minute
const SMOOTHING_RESULT_CACHE_TTL = 10 * time.Minute

// Energy data refresher config, 0 disables the job
const ENERGY_DATA_REFRESHER_SCHEDULE_MINUTES = 0

// Session tracking, idle sessions release their chart
const SESSION_IDLE_TTL = 30 * time.Minute
const SESSION_SWEEP_INTERVAL = 5 * time.Minute

// Form defaults applied once after the initial load
const DEFAULT_SMOOTHING_FACTOR = "0.2"
const DEFAULT_TREND_SMOOTHING_FACTOR = "0.3"
const DEFAULT_SEASON_SMOOTHING_FACTOR = "0.4"
const DEFAULT_SEASON_LENGTH = "6"
const DEFAULT_VALUES_TO_FORECAST = "0"

// Optimization feedback
const OPTIMIZED_PARAM_DISPLAY_WIDTH = 4
const HIGHLIGHT_DURATION = 2 * time.Second
const HIGHLIGHT_COLOR = "#FFFF99"

// Chart config
const CHART_TITLE = "Energy Data"
const CHART_WIDTH = "900px"
const CHART_HEIGHT = "500px"
const TOOLTIP_PRECISION = 3
const TIME_AXIS_TICK_SECONDS = 86400

// Unit presets, selected by --unit-preset
const UNIT_PRESET_KWH = "kwh"
const UNIT_PRESET_WH = "wh"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const ENERGY_DATA_RESOURCE = "energy_data.json"
const HOLT_WINTERS_RESPONSE_RESOURCE = "holt_winters_response.json"
const OPTIMIZE_RESPONSE_RESOURCE = "optimize_response.json"

// Config carries the runtime overrides of the constants above.
type Config struct {
	Env            string
	Addr           string
	BackendURL     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	UnitPreset     string
	RefreshMinutes int
	UseCache       bool
}

// Default returns a Config populated from the package constants.
func Default() Config {
	return Config{
		Env:            "dev",
		Addr:           HTTP_SERVER_ADDRESS,
		BackendURL:     SMOOTHING_ENDPOINT_BASE,
		RedisAddr:      REDIS_DB_ADDRESS,
		RedisPassword:  REDIS_DB_PASSWORD,
		RedisDB:        REDIS_DB,
		UnitPreset:     UNIT_PRESET_KWH,
		RefreshMinutes: ENERGY_DATA_REFRESHER_SCHEDULE_MINUTES,
		UseCache:       true,
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
