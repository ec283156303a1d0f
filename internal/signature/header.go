package signature

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheme is the Authorization scheme used by the service
const Scheme = "MAC"

// Header is a parsed MAC Authorization header
type Header struct {
	ID    string `json:"id"`
	TS    int64  `json:"ts"`
	Nonce string `json:"nonce"`
	MAC   string `json:"mac"`
}

// String renders the header value in wire form
func (h *Header) String() string {
	return fmt.Sprintf(`%s id="%s", ts="%d", nonce="%s", mac="%s"`, Scheme, h.ID, h.TS, h.Nonce, h.MAC)
}

// ParseHeader parses an Authorization header value of the form
// MAC id="..", ts="..", nonce="..", mac=".."
func ParseHeader(value string) (*Header, error) {
	value = strings.TrimSpace(value)

	scheme, params, ok := strings.Cut(value, " ")
	if !ok || scheme != Scheme {
		return nil, ErrMalformed("expected MAC scheme")
	}

	fields := make(map[string]string, 4)
	for _, part := range strings.Split(params, ",") {
		name, quoted, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, ErrMalformed(fmt.Sprintf("bad parameter %q", part))
		}
		v, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, ErrMalformed(fmt.Sprintf("parameter %s is not quoted", name))
		}
		fields[name] = v
	}

	h := &Header{
		ID:    fields["id"],
		Nonce: fields["nonce"],
		MAC:   fields["mac"],
	}
	if h.ID == "" || h.Nonce == "" || h.MAC == "" || fields["ts"] == "" {
		return nil, ErrMalformed("missing parameter")
	}

	ts, err := strconv.ParseInt(fields["ts"], 10, 64)
	if err != nil {
		return nil, ErrMalformed("ts is not a number")
	}
	h.TS = ts

	return h, nil
}
