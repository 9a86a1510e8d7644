package env

import (
	"os"
)

// PodName is set by the deployment, e.g. flixe-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName is the deployment stage, e.g. staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName defaults to api, the only binary of this module
func AppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return "api"
}
