package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode is a permission bitmask. It is written as an octal string ("0660") in JSON
// and YAML so configuration files never confuse it with a decimal magnitude.
type Mode uint32

// ParseMode reads an octal permission string such as "0660", "660" or "0o660".
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0o")
	v, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission mode %q: %w", s, err)
	}
	return checkMode(v)
}

func checkMode(v uint64) (Mode, error) {
	if v > uint64(os.ModePerm) {
		return 0, fmt.Errorf("permission mode %#o has bits outside %#o", v, os.ModePerm)
	}
	return Mode(v), nil
}

func (m Mode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

func (m Mode) String() string {
	return fmt.Sprintf("%04o", uint32(m))
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts an octal string, or a plain number holding the raw bits.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseMode(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("permission mode must be an octal string: %w", err)
	}
	parsed, err := checkMode(n)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML accepts an octal string, or an integer. YAML 1.1 decoders already
// read unquoted 0660 as octal, so integers are taken as the raw bits.
func (m *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var (
		parsed Mode
		err    error
	)
	switch v := raw.(type) {
	case string:
		parsed, err = ParseMode(v)
	case int:
		if v < 0 {
			return fmt.Errorf("permission mode %d is negative", v)
		}
		parsed, err = checkMode(uint64(v))
	case uint64:
		parsed, err = checkMode(v)
	default:
		return fmt.Errorf("permission mode must be an octal string, got %T", raw)
	}
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
