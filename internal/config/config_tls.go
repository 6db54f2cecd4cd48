package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// BuildClientTLSConfig translates the backend TLS settings into a
// *tls.Config for the HTTP client. Returns nil when nothing beyond
// the system defaults is requested, so plain deployments keep the
// default transport untouched.
func (c *ClientTLSConfig) BuildClientTLSConfig() (*tls.Config, error) {
	if c.CAFile == "" && c.ServerName == "" && !c.InsecureSkipVerify {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: c.ServerName,
	}

	if c.InsecureSkipVerify {
		tlsConfig.InsecureSkipVerify = true
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file %s: %w", c.CAFile, err)
		}

		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in CA file %s", c.CAFile)
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}
