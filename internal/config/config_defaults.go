package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Backend configuration
	v.SetDefault("backend.baseURL", "http://localhost:5000")
	v.SetDefault("backend.timeout", 30*time.Second)
	v.SetDefault("backend.uploadTimeout", 2*time.Minute) // CV uploads carry file bodies
	v.SetDefault("backend.maxRetries", 2)

	// Backend TLS defaults
	v.SetDefault("backend.tls.caFile", "")
	v.SetDefault("backend.tls.serverName", "")
	v.SetDefault("backend.tls.insecureSkipVerify", false)

	// Circuit breaker defaults
	v.SetDefault("backend.circuitBreaker.enabled", true)
	v.SetDefault("backend.circuitBreaker.maxRequests", 3)
	v.SetDefault("backend.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("backend.circuitBreaker.timeout", 30*time.Second)
	v.SetDefault("backend.circuitBreaker.minRequests", 3)
	v.SetDefault("backend.circuitBreaker.failureThreshold", 0.6)

	// App configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "text")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxCVSize", 5*1024*1024) // 5MB
	v.SetDefault("app.cvExtensions", []string{".pdf", ".doc", ".docx"})

	// Session configuration
	v.SetDefault("session.reloadLimit.enabled", true)
	v.SetDefault("session.reloadLimit.perSecond", 2.0)
	v.SetDefault("session.reloadLimit.burst", 3)

	// Observability configuration
	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.serviceName", "careerpilot")
	v.SetDefault("observability.serviceVersion", "")
	v.SetDefault("observability.serviceInstance", "")
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 30*time.Second)
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", false)
	v.SetDefault("observability.prometheus.enabled", false)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9464")
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
