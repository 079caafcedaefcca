package telemetry

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrInvalidCACerts = errors.New("invalid CA certificates")

// getTLSConfig builds a client TLS config trusting the base64 encoded PEM bundle.
func getTLSConfig(caCertsBase64 string) (*tls.Config, error) {
	caCertsBytes, err := base64.StdEncoding.DecodeString(caCertsBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalidCACerts, err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCertsBytes) {
		return nil, fmt.Errorf("%w: no PEM certificate found", ErrInvalidCACerts)
	}

	return &tls.Config{
		RootCAs:    caCertPool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
