package model

import (
	"strings"

	"packlist/backend/common"
)

// Option is a key/value row for runtime configuration that admins may change
// without a restart, e.g. the public base URL share links are built from.
type Option struct {
	Key   string `json:"key" gorm:"primaryKey;size:64"`
	Value string `json:"value" gorm:"type:text"`
}

var OptionMap map[string]string

func InitOptionMap() error {
	common.OptionMapRWMutex.Lock()
	OptionMap = make(map[string]string)
	OptionMap["ServerAddress"] = "http://localhost:3000"

	var options []Option
	if err := DB.Find(&options).Error; err != nil {
		common.OptionMapRWMutex.Unlock()
		return err
	}
	for _, option := range options {
		OptionMap[option.Key] = option.Value
	}
	common.OptionMapRWMutex.Unlock()
	common.SysLog("options loaded from database")
	return nil
}

func AllOptions() ([]*Option, error) {
	var options []*Option
	err := DB.Order("key").Find(&options).Error
	return options, err
}

func GetOption(key string) string {
	common.OptionMapRWMutex.RLock()
	defer common.OptionMapRWMutex.RUnlock()
	return OptionMap[key]
}

func UpdateOption(key string, value string) error {
	option := Option{Key: key}
	trimmed := strings.TrimSpace(value)
	if err := DB.Where(Option{Key: key}).Assign(Option{Value: trimmed}).FirstOrCreate(&option).Error; err != nil {
		return err
	}
	option.Value = trimmed
	common.OptionMapRWMutex.Lock()
	OptionMap[option.Key] = option.Value
	common.OptionMapRWMutex.Unlock()
	return nil
}
