// Package token implements the TokenId tagged sum and the checked
// signed/unsigned arithmetic the runtime ledger and account balances
// need.
package token

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// Kind discriminates the three TokenId variants.
type Kind uint8

const (
	Native Kind = iota
	NonFungible
	Multi
)

func (k Kind) prefix() string {
	switch k {
	case Native:
		return "nep141"
	case NonFungible:
		return "nep171"
	case Multi:
		return "nep245"
	default:
		return ""
	}
}

// ID is the tagged-sum token identifier. Native tokens only carry a
// contract account; NonFungible and Multi additionally carry an
// instance id that may itself contain colons, so parsing cuts on the
// first colon only for the prefix and leaves the remainder intact.
type ID struct {
	Kind     Kind
	Account  string
	Instance string
}

func NewNative(account string) ID { return ID{Kind: Native, Account: account} }

func NewNonFungible(account, instance string) ID {
	return ID{Kind: NonFungible, Account: account, Instance: instance}
}

func NewMulti(account, instance string) ID {
	return ID{Kind: Multi, Account: account, Instance: instance}
}

// String renders the canonical wire form:
// "nep141:<account>" | "nep171:<account>:<instance>" | "nep245:<account>:<instance>".
func (id ID) String() string {
	switch id.Kind {
	case Native:
		return id.Kind.prefix() + ":" + id.Account
	case NonFungible, Multi:
		return id.Kind.prefix() + ":" + id.Account + ":" + id.Instance
	default:
		return ""
	}
}

// Parse decodes a canonical TokenId string. Round-trips exactly with
// String for all three variants.
func Parse(s string) (ID, error) {
	prefix, rest, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, fmt.Errorf("%w: missing prefix in %q", defuseerr.ErrParseTokenID, s)
	}
	switch prefix {
	case "nep141":
		if rest == "" {
			return ID{}, fmt.Errorf("%w: empty account in %q", defuseerr.ErrParseTokenID, s)
		}
		return NewNative(rest), nil
	case "nep171", "nep245":
		account, instance, ok := strings.Cut(rest, ":")
		if !ok || account == "" || instance == "" {
			return ID{}, fmt.Errorf("%w: malformed %s id %q", defuseerr.ErrParseTokenID, prefix, s)
		}
		if prefix == "nep171" {
			return NewNonFungible(account, instance), nil
		}
		return NewMulti(account, instance), nil
	default:
		return ID{}, fmt.Errorf("%w: unknown prefix %q", defuseerr.ErrParseTokenID, prefix)
	}
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText/UnmarshalText let ID key a JSON object (map[ID]T), used
// by the intents' token maps and by reported unmatched deltas.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
