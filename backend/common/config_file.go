package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"
)

const defaultConfigTemplate = "PORT=3000\nSQLITE_PATH=data/packlist.db\nUPLOAD_PATH=upload\nJWT_SECRET=%s\n"

// LoadConfigFile bootstraps and applies ~/.config/packlist/config.ini.
// Environment variables applied in init() take precedence, so the file is
// only consulted for keys the environment left unset.
func LoadConfigFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "packlist", "config.ini")
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyConfigMap(configMap); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(fmt.Sprintf(defaultConfigTemplate, uuid.New().String())); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func applyConfigMap(configMap map[string]string) error {
	fromFile := func(key string) (string, bool) {
		if os.Getenv(key) != "" {
			return "", false
		}
		value, ok := configMap[key]
		return value, ok && value != ""
	}

	if configValue, ok := fromFile("SESSION_SECRET"); ok {
		SessionSecret = configValue
	}

	if configValue, ok := fromFile("SQLITE_PATH"); ok {
		SQLitePath = configValue
	}

	if configValue, ok := fromFile("UPLOAD_PATH"); ok {
		UploadPath = configValue
	}

	if configValue, ok := fromFile("JWT_SECRET"); ok {
		JWTSecret = configValue
		if os.Getenv("JWT_REFRESH_SECRET") == "" {
			JWTRefreshSecret = configValue
		}
	}

	if configValue, ok := fromFile("JWT_REFRESH_SECRET"); ok {
		JWTRefreshSecret = configValue
	}

	if configValue, ok := fromFile("PORT"); ok {
		portInt, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PORT: %w", err)
		}
		*Port = portInt
	}

	return nil
}
