// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package captures

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mdhender/ffrkconv/model"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// GL captures carry the URL of the global servers. Anything else is
// assumed to be from Japan.
const glURLPrefix = "http://ffrk.denagames.com/"

var utf8BOM = []byte("\xef\xbb\xbf")

// Capture is one parsed battle init capture.
type Capture struct {
	Path   string
	URL    string // empty for direct captures
	Region string // gl or jp
	SHA256 string
	Data   model.BattleInitData
}

// Read reads and parses a capture file.
func Read(fs afero.Fs, path string) (*Capture, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &ErrReadFile{Op: "read", Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse parses a capture. Captures saved by proxy tools wrap the reply as
// the "data" property next to the request "url"; direct captures are the
// reply itself. Both forms are accepted.
func Parse(path string, data []byte) (*Capture, error) {
	hash := sha256.Sum256(data)
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return nil, &ErrParseCapture{Path: path, Err: fmt.Errorf("invalid json")}
	}

	c := &Capture{
		Path:   path,
		URL:    gjson.GetBytes(data, "url").String(),
		SHA256: hex.EncodeToString(hash[:]),
	}
	c.Region = "jp"
	if strings.HasPrefix(c.URL, glURLPrefix) {
		c.Region = "gl"
	}

	reply := data
	if wrapped := gjson.GetBytes(data, "data"); wrapped.IsObject() {
		reply = []byte(wrapped.Raw)
	}
	if !gjson.GetBytes(reply, "battle").IsObject() {
		return nil, &ErrParseCapture{Path: path, Err: fmt.Errorf("missing battle")}
	}
	if err := json.Unmarshal(reply, &c.Data); err != nil {
		return nil, &ErrParseCapture{Path: path, Err: err}
	}
	return c, nil
}
