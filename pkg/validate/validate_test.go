// pkg/validate/validate_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test name and option token classification at the shell boundary

package validate_test

import (
	"testing"

	"github.com/arthur-debert/depot/pkg/errors"
	"github.com/arthur-debert/depot/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple_name", input: "left-pad", wantErr: false},
		{name: "scoped_name", input: "@types/node", wantErr: false},
		{name: "dotted_name", input: "lodash.merge", wantErr: false},
		{name: "underscored_name", input: "lo_dash", wantErr: false},
		{name: "digits", input: "base64url2", wantErr: false},
		{name: "single_character", input: "q", wantErr: false},
		{name: "empty_name", input: "", wantErr: true},
		{name: "semicolon", input: "left;pad", wantErr: true},
		{name: "space", input: "left pad", wantErr: true},
		{name: "backtick", input: "left`pad", wantErr: true},
		{name: "dollar", input: "$PATH", wantErr: true},
		{name: "ampersand", input: "a&&b", wantErr: true},
		{name: "pipe", input: "a|b", wantErr: true},
		{name: "quote", input: `pad"`, wantErr: true},
		{name: "newline", input: "left\npad", wantErr: true},
		{name: "unicode", input: "café", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Name(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidName))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Path-traversal-looking names pass the filter because '.' and '/' are
// individually permitted. This is documented public behavior; changing
// it would break callers, so these cases pin it.
func TestName_AcceptsTraversalLookingNames(t *testing.T) {
	for _, name := range []string{"../evil", "@scope/../evil", "./local", "a/../../b"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, validate.Name(name))
		})
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "short_flag", token: "-S", wantErr: false},
		{name: "short_flag_lowercase", token: "-g", wantErr: false},
		{name: "short_flag_multi", token: "-SD", wantErr: false},
		{name: "long_flag", token: "--save", wantErr: false},
		{name: "long_flag_hyphenated", token: "--save-dev", wantErr: false},
		{name: "long_flag_many_groups", token: "--no-package-lock", wantErr: false},
		{name: "mixed_case_long_flag", token: "--Save", wantErr: true},
		{name: "uppercase_long_flag", token: "--SAVE", wantErr: true},
		{name: "double_inner_hyphen", token: "--save--dev", wantErr: true},
		{name: "trailing_hyphen", token: "--save-", wantErr: true},
		{name: "triple_dash", token: "---save", wantErr: true},
		{name: "bare_word", token: "save", wantErr: true},
		{name: "bare_dash", token: "-", wantErr: true},
		{name: "bare_double_dash", token: "--", wantErr: true},
		{name: "short_flag_digit", token: "-9", wantErr: true},
		{name: "long_flag_digit", token: "--ipv6", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Token(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOptions))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToken_RejectsShellMetacharacters(t *testing.T) {
	// Every blocked character, smuggled into an otherwise plausible flag.
	for _, ch := range []string{";", "&", "|", "$", "`", "<", ">", "\\", "*", "?", "(", ")", "{", "}", "[", "]", "~"} {
		t.Run(ch, func(t *testing.T) {
			err := validate.Token("--save" + ch)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOptions))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "array_form_passes_through",
			raw:  []string{"--save-dev", "--no-fund"},
			want: []string{"--save-dev", "--no-fund"},
		},
		{
			name: "string_form_is_split",
			raw:  []string{"--save-dev --no-fund"},
			want: []string{"--save-dev", "--no-fund"},
		},
		{
			name: "mixed_forms_flatten_in_order",
			raw:  []string{"--save-dev --no-fund", "-E"},
			want: []string{"--save-dev", "--no-fund", "-E"},
		},
		{
			name: "extra_whitespace_collapses",
			raw:  []string{"  --save   \t--no-fund  "},
			want: []string{"--save", "--no-fund"},
		},
		{
			name: "blank_elements_drop",
			raw:  []string{"", "   ", "--save"},
			want: []string{"--save"},
		},
		{
			name: "nil_input",
			raw:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Tokenize(tt.raw))
		})
	}
}

func TestOptions(t *testing.T) {
	t.Run("valid_array_form", func(t *testing.T) {
		tokens, err := validate.Options([]string{"--save-dev", "-E"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--save-dev", "-E"}, tokens)
	})

	t.Run("valid_string_form", func(t *testing.T) {
		tokens, err := validate.Options([]string{"--save-dev -E"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--save-dev", "-E"}, tokens)
	})

	t.Run("equivalent_forms_validate_identically", func(t *testing.T) {
		fromArray, errArray := validate.Options([]string{"--save-dev", "--no-fund"})
		fromString, errString := validate.Options([]string{"--save-dev --no-fund"})
		require.NoError(t, errArray)
		require.NoError(t, errString)
		assert.Equal(t, fromArray, fromString)
	})

	t.Run("first_bad_token_is_named", func(t *testing.T) {
		tokens, err := validate.Options([]string{"--save", "--Save", "--also-bad;"})
		require.Error(t, err)
		assert.Nil(t, tokens)
		assert.Contains(t, err.Error(), "--Save")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOptions))
	})

	t.Run("absent_options_are_nil_nil", func(t *testing.T) {
		tokens, err := validate.Options(nil)
		require.NoError(t, err)
		assert.Nil(t, tokens)

		tokens, err = validate.Options([]string{})
		require.NoError(t, err)
		assert.Nil(t, tokens)
	})

	t.Run("injection_attempt_rejected", func(t *testing.T) {
		_, err := validate.Options([]string{"--save; rm -rf /"})
		require.Error(t, err)
	})
}
