package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvOverrides_Port(t *testing.T) {
	original := *Port
	t.Cleanup(func() { *Port = original })

	t.Setenv("PORT", "4567")
	applyEnvOverrides()
	assert.Equal(t, 4567, *Port)
}

func TestApplyEnvOverrides_InvalidPortIgnored(t *testing.T) {
	original := *Port
	t.Cleanup(func() { *Port = original })

	t.Setenv("PORT", "not-a-port")
	applyEnvOverrides()
	assert.Equal(t, original, *Port)
}

func TestApplyConfigMap_PortFromFile(t *testing.T) {
	original := *Port
	t.Cleanup(func() { *Port = original })

	assert.NoError(t, applyConfigMap(map[string]string{"PORT": "6123"}))
	assert.Equal(t, 6123, *Port)
}

func TestApplyConfigMap_EnvWinsOverFile(t *testing.T) {
	original := *Port
	t.Cleanup(func() { *Port = original })

	t.Setenv("PORT", "4567")
	applyEnvOverrides()
	assert.NoError(t, applyConfigMap(map[string]string{"PORT": "6123"}))
	assert.Equal(t, 4567, *Port)
}

func TestApplyConfigMap_InvalidPortIsError(t *testing.T) {
	original := *Port
	t.Cleanup(func() { *Port = original })

	assert.Error(t, applyConfigMap(map[string]string{"PORT": "not-a-port"}))
}
