package device

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrFirmwareMismatch is returned when a downloaded payload does not match the published fingerprint.
var ErrFirmwareMismatch = errors.New("firmware fingerprint mismatch")

// Firmware is one published firmware release. Lists are ordered newest first.
// Fingerprint is the hex sha256 of the payload.
type Firmware struct {
	MajorVersion  uint32 `json:"major_version"`
	MinorVersion  uint32 `json:"minor_version"`
	BugfixVersion uint32 `json:"bugfix_version"`
	URL           string `json:"url"`
	Fingerprint   string `json:"fingerprint,omitempty"`
	Required      bool   `json:"required"`
	Changelog     string `json:"changelog,omitempty"`
}

func (f Firmware) Version() string {
	return fmt.Sprintf("%d.%d.%d", f.MajorVersion, f.MinorVersion, f.BugfixVersion)
}

func compareVersion(f Firmware, features Features) int {
	pairs := [3][2]uint32{
		{f.MajorVersion, features.MajorVersion},
		{f.MinorVersion, features.MinorVersion},
		{f.BugfixVersion, features.BugfixVersion},
	}
	for _, p := range pairs {
		switch {
		case p[0] > p[1]:
			return 1
		case p[0] < p[1]:
			return -1
		}
	}
	return 0
}

// CheckFirmware returns the newest firmware when it is newer than the installed one, nil otherwise.
// The result is marked required when any release between the installed and the newest one is required.
func CheckFirmware(ctx context.Context, source FirmwareSource, features Features) (*Firmware, error) {
	list, err := source.Firmwares(ctx)
	if err != nil {
		return nil, fmt.Errorf("firmware list: %w", err)
	}
	return pickFirmware(list, features), nil
}

func pickFirmware(list []Firmware, features Features) *Firmware {
	if len(list) == 0 {
		return nil
	}
	latest := list[0]
	if compareVersion(latest, features) <= 0 {
		return nil
	}
	for _, f := range list {
		if compareVersion(f, features) <= 0 {
			break
		}
		if f.Required {
			latest.Required = true
			break
		}
	}
	return &latest
}

// StaticFirmware is a fixed firmware list. Payload URLs are fetched over http or read from disk.
type StaticFirmware []Firmware

func (s StaticFirmware) Firmwares(context.Context) ([]Firmware, error) {
	return s, nil
}

func (s StaticFirmware) Download(ctx context.Context, fw Firmware) ([]byte, error) {
	return download(ctx, http.DefaultClient, "", fw)
}

// FirmwareFile reads the firmware list from a JSON file on every check.
// Relative payload URLs are resolved against the directory of the list.
type FirmwareFile string

func (f FirmwareFile) Firmwares(context.Context) ([]Firmware, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return decodeFirmwareList(string(f), data)
}

func (f FirmwareFile) Download(ctx context.Context, fw Firmware) ([]byte, error) {
	return download(ctx, http.DefaultClient, string(f), fw)
}

// FirmwareHTTP fetches the firmware list from ListURL. Relative payload URLs are resolved against it.
type FirmwareHTTP struct {
	ListURL string
	Client  *http.Client
}

func (f FirmwareHTTP) Firmwares(ctx context.Context) ([]Firmware, error) {
	data, err := fetch(ctx, f.client(), "", f.ListURL)
	if err != nil {
		return nil, err
	}
	return decodeFirmwareList(f.ListURL, data)
}

func (f FirmwareHTTP) Download(ctx context.Context, fw Firmware) ([]byte, error) {
	return download(ctx, f.client(), f.ListURL, fw)
}

func (f FirmwareHTTP) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func decodeFirmwareList(origin string, data []byte) ([]Firmware, error) {
	var list []Firmware
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", origin, err)
	}
	return list, nil
}

func download(ctx context.Context, client *http.Client, base string, fw Firmware) ([]byte, error) {
	payload, err := fetch(ctx, client, base, fw.URL)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("firmware %s: empty payload", fw.Version())
	}
	if fw.Fingerprint == "" {
		return payload, nil
	}
	if got := hex.EncodeToString(chainhash.HashB(payload)); !strings.EqualFold(got, fw.Fingerprint) {
		return nil, fmt.Errorf("%w: firmware %s is %s, published %s", ErrFirmwareMismatch, fw.Version(), got, fw.Fingerprint)
	}
	return payload, nil
}

// fetch reads ref over http(s) or from disk. base is the location ref is relative to.
func fetch(ctx context.Context, client *http.Client, base, ref string) ([]byte, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", ref, err)
	}
	if b, err := url.Parse(base); err == nil && (b.Scheme == "http" || b.Scheme == "https") {
		u = b.ResolveReference(u)
	}

	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", u.Redacted(), err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("get %s: unexpected status %s", u.Redacted(), resp.Status)
		}
		return io.ReadAll(resp.Body)
	case "", "file":
		path := filepath.FromSlash(u.Path)
		if !filepath.IsAbs(path) && base != "" {
			path = filepath.Join(filepath.Dir(base), path)
		}
		return os.ReadFile(path)
	default:
		return nil, fmt.Errorf("firmware url scheme %q not supported", u.Scheme)
	}
}
