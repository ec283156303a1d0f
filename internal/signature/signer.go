package signature

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"runtime"
	"strconv"
	"time"
)

// Version is the client version announced in the User-Agent header
const Version = "1.4.2"

// NonceSize is the number of random bytes in a nonce (hex encoded to twice as many characters)
const NonceSize = 4

// Signer builds MAC Authorization headers for NIP24 requests.
// It holds only the immutable key pair and is safe for concurrent use.
type Signer struct {
	id     string
	key    string
	clock  func() time.Time
	random io.Reader
}

// SignerOption configures the signer
type SignerOption func(*Signer)

// WithClock sets the time source used for the request timestamp
func WithClock(clock func() time.Time) SignerOption {
	return func(s *Signer) {
		s.clock = clock
	}
}

// WithRandom sets the source of nonce bytes
func WithRandom(r io.Reader) SignerOption {
	return func(s *Signer) {
		s.random = r
	}
}

// NewSigner creates a signer for the given key id and secret
func NewSigner(id, key string, opts ...SignerOption) *Signer {
	s := &Signer{
		id:     id,
		key:    key,
		clock:  time.Now,
		random: rand.Reader,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns the key id sent in the header
func (s *Signer) ID() string {
	return s.id
}

// Sign returns the Authorization header value for a request
func (s *Signer) Sign(method, rawURL string) (string, error) {
	target, err := parseTarget(rawURL)
	if err != nil {
		return "", err
	}

	nonce, err := s.nonce()
	if err != nil {
		return "", err
	}

	h := &Header{
		ID:    s.id,
		TS:    s.clock().Unix(),
		Nonce: nonce,
	}
	h.MAC = computeMAC(s.key, canonical(h.TS, h.Nonce, method, target))

	return h.String(), nil
}

func (s *Signer) nonce() (string, error) {
	b := make([]byte, NonceSize)
	if _, err := io.ReadFull(s.random, b); err != nil {
		return "", ErrRandom(err)
	}
	return hex.EncodeToString(b), nil
}

// UserAgent returns the User-Agent header value, prefixed with the
// application name when one is set
func UserAgent(app string) string {
	ua := fmt.Sprintf("NIP24Client/%s Go/%s", Version, runtime.GOOS)
	if app != "" {
		return app + " " + ua
	}
	return ua
}

// target holds the URL parts covered by the MAC
type target struct {
	host string
	path string
	port int
}

func parseTarget(rawURL string) (*target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, ErrInvalidURL(rawURL, err)
	}
	if u.Host == "" {
		return nil, ErrInvalidURL(rawURL, fmt.Errorf("missing host"))
	}

	t := &target{
		host: u.Hostname(),
		path: u.EscapedPath(),
	}
	if t.path == "" {
		t.path = "/"
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, ErrInvalidURL(rawURL, err)
		}
		t.port = port
	} else {
		switch u.Scheme {
		case "https":
			t.port = 443
		case "http":
			t.port = 80
		default:
			return nil, ErrInvalidURL(rawURL, fmt.Errorf("unsupported scheme %q", u.Scheme))
		}
	}

	return t, nil
}

// canonical builds the newline separated string the MAC is computed over.
// It ends with an empty line.
func canonical(ts int64, nonce, method string, t *target) string {
	return fmt.Sprintf("%d\n%s\n%s\n%s\n%s\n%d\n\n", ts, nonce, method, t.path, t.host, t.port)
}

func computeMAC(key, msg string) string {
	m := hmac.New(sha256.New, []byte(key))
	m.Write([]byte(msg))
	return base64.StdEncoding.EncodeToString(m.Sum(nil))
}
