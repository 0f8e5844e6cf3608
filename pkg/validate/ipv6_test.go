package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaskavasileva/gh-copilot-demo/pkg/validate"
)

func TestIsValidIPv6(t *testing.T) {
	t.Parallel()

	t.Run("accepts full addresses", func(t *testing.T) {
		t.Parallel()

		validAddrs := []string{
			"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
			"2001:db8:85a3:0:0:8a2e:370:7334",
			"fe80:1:2:3:4:5:6:7",
			"FE80:1:2:3:4:5:6:ABCD", // case-insensitive hex
		}

		for _, a := range validAddrs {
			assert.True(t, validate.IsValidIPv6(a), "address should be valid: %s", a)
		}
	})

	t.Run("accepts zero-compression", func(t *testing.T) {
		t.Parallel()

		validAddrs := []string{
			"2001:db8::1",
			"::1",
			"::",
			"1::",
			"2001:db8::8a2e:370:7334",
			"1:2:3:4:5:6:7::",
		}

		for _, a := range validAddrs {
			assert.True(t, validate.IsValidIPv6(a), "address should be valid: %s", a)
		}
	})

	t.Run("accepts embedded IPv4 suffixes", func(t *testing.T) {
		t.Parallel()

		validAddrs := []string{
			"::ffff:192.0.2.128",
			"::192.0.2.128",
			"64:ff9b::255.255.255.255",
			"1:2:3:4:5:6:192.0.2.128", // suffix fills the last two slots
		}

		for _, a := range validAddrs {
			assert.True(t, validate.IsValidIPv6(a), "address should be valid: %s", a)
		}
	})

	t.Run("rejects ambiguous compression", func(t *testing.T) {
		t.Parallel()

		invalidAddrs := []string{
			"2001:db8::8a2e::7334",
			"::1::",
			"1::2::3",
		}

		for _, a := range invalidAddrs {
			assert.False(t, validate.IsValidIPv6(a), "address should be invalid: %s", a)
		}
	})

	t.Run("rejects bad group counts", func(t *testing.T) {
		t.Parallel()

		invalidAddrs := []string{
			"1:2:3:4:5:6:7",           // seven groups, no compression
			"1:2:3:4:5:6:7:8:9",       // nine groups
			"1:2:3:4:5:6:7:8::",       // compression with nothing left to omit
			"1:2:3:4:5:6:7::8",        // same, split across the marker
			"1:2:3:4:5:6:7:192.0.2.1", // IPv4 suffix pushes count past eight
		}

		for _, a := range invalidAddrs {
			assert.False(t, validate.IsValidIPv6(a), "address should be invalid: %s", a)
		}
	})

	t.Run("rejects malformed hextets", func(t *testing.T) {
		t.Parallel()

		invalidAddrs := []string{
			"12345::",        // five digits
			"2001:db8::g1",   // non-hex digit
			":1:2:3:4:5:6:7", // leading lone colon
			"1:2:3:4:5:6:7:", // trailing lone colon
			"2001:db8:::1",   // empty group beside the marker
		}

		for _, a := range invalidAddrs {
			assert.False(t, validate.IsValidIPv6(a), "address should be invalid: %s", a)
		}
	})

	t.Run("rejects bad embedded IPv4 suffixes", func(t *testing.T) {
		t.Parallel()

		invalidAddrs := []string{
			"::ffff:999.0.2.128",  // octet out of range
			"::ffff:192.0.2",      // three octets
			"::ffff:192.0.2.1.5",  // five octets
			"::ffff:192.0.02.128", // leading-zero padding
			"::ffff:192.0.2.12a",  // non-digit
			"::192.0.2.128:ffff",  // suffix not in final position
			"192.0.2.128::ffff",   // suffix on the left side
		}

		for _, a := range invalidAddrs {
			assert.False(t, validate.IsValidIPv6(a), "address should be invalid: %s", a)
		}
	})

	t.Run("rejects non-text and blank input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, validate.IsValidIPv6(nil))
		assert.False(t, validate.IsValidIPv6(2001))
		assert.False(t, validate.IsValidIPv6(""))
		assert.False(t, validate.IsValidIPv6("   "))
	})
}
