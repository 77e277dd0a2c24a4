package shared

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSWithAdditionalCAs trusts the system roots plus every PEM bundle in caFiles.
// Empty entries are skipped; a file without any certificate is an error.
func TLSWithAdditionalCAs(caFiles ...string) (*tls.Config, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, errors.Wrap(err, "loading system cert pool")
	}
	for _, file := range caFiles {
		if file == "" {
			continue
		}
		pem, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading CA file %q", file)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Errorf("no certificate found in CA file %q", file)
		}
	}
	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
