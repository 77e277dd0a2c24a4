package shared

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTLSWithAdditionalCAs(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "newsletter-test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	caFile := path.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(caFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))

	cfg, err := TLSWithAdditionalCAs(caFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.RootCAs)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	_, err = cert.Verify(x509.VerifyOptions{Roots: cfg.RootCAs})
	assert.NoError(t, err)
}

func TestTLSWithAdditionalCAsMissingFile(t *testing.T) {
	_, err := TLSWithAdditionalCAs(path.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)
}

func TestTLSWithAdditionalCAsRejectsFileWithoutCertificate(t *testing.T) {
	notPEM := path.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(notPEM, []byte("not a certificate"), 0o600))

	_, err := TLSWithAdditionalCAs(notPEM)
	assert.ErrorContains(t, err, "no certificate found")
}

func TestTLSWithAdditionalCAsSkipsEmptyEntries(t *testing.T) {
	cfg, err := TLSWithAdditionalCAs("")
	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
}
