package common

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

var StartTime = time.Now().Unix()
var Version = "v0.2.0"
var SystemName = "Packlist"

// SessionSecret falls back to a per-process random value; sessions then do not
// survive a restart unless SESSION_SECRET is configured.
var SessionSecret = uuid.New().String()

var JWTSecret = uuid.New().String()
var JWTRefreshSecret = JWTSecret

var SQLitePath = "packlist.db"
var UploadPath = "upload"

var OptionMapRWMutex sync.RWMutex

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

const (
	UserStatusEnabled  = 1
	UserStatusDisabled = 2
)

func PrintHelp() {
	fmt.Println("Packlist " + Version)
	fmt.Println("Usage: packlist [--port <port>] [--log-dir <log dir>] [--version] [--help]")
}

func init() {
	applyEnvOverrides()
}

func applyEnvOverrides() {
	if os.Getenv("SESSION_SECRET") != "" {
		SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if os.Getenv("JWT_SECRET") != "" {
		JWTSecret = os.Getenv("JWT_SECRET")
		JWTRefreshSecret = os.Getenv("JWT_SECRET")
	}
	if os.Getenv("JWT_REFRESH_SECRET") != "" {
		JWTRefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
	}
	if os.Getenv("SQLITE_PATH") != "" {
		SQLitePath = os.Getenv("SQLITE_PATH")
	}
	if os.Getenv("UPLOAD_PATH") != "" {
		UploadPath = os.Getenv("UPLOAD_PATH")
	}
	if os.Getenv("PORT") != "" {
		portInt, err := strconv.Atoi(os.Getenv("PORT"))
		if err == nil {
			*Port = portInt
		}
	}
}
