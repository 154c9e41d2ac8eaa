package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsOf(t *testing.T) {
	fs, err := FieldsOf(GroupHomePage)
	require.NoError(t, err)

	keys := make([]Name, len(fs))
	for i, f := range fs {
		keys[i] = f.Key
	}

	assert.Equal(t, []Name{
		NameStatus,
		NameCompanyName,
		NameCompanyAddress,
		NameDescription,
		NameInstagramLink,
		NameFacebookLink,
		NameTikTokLink,
		NameEmail,
		NamePhoneNumber,
	}, keys)

	companyName := fs[1]
	assert.True(t, companyName.Required)
	assert.Equal(t, 255, companyName.MaxLength)
	assert.Equal(t, KindShortText, companyName.Kind)

	fs, err = FieldsOf(GroupGeneral)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, KindFile, fs[0].Kind)
	assert.Equal(t, KindFile, fs[1].Kind)

	_, err = FieldsOf("unknown")
	require.ErrorIs(t, err, ErrUnknownGroup)
}

func TestFieldsOf_ReturnsCopy(t *testing.T) {
	fs, err := FieldsOf(GroupHomePage)
	require.NoError(t, err)

	fs[0].Label = "changed"

	again, err := FieldsOf(GroupHomePage)
	require.NoError(t, err)
	assert.Equal(t, "Status", again[0].Label)
}

func TestSections(t *testing.T) {
	ss, err := Sections(GroupHomePage)
	require.NoError(t, err)
	require.Len(t, ss, 4)

	assert.Equal(t, "Homepage Status", ss[0].Title)
	assert.Len(t, ss[0].Fields, 1)
	assert.Equal(t, "Company", ss[1].Title)
	assert.Len(t, ss[1].Fields, 3)
	assert.Equal(t, "Social Media", ss[2].Title)
	assert.Len(t, ss[2].Fields, 3)
	assert.Equal(t, "Contact", ss[3].Title)
	assert.Len(t, ss[3].Fields, 2)

	ss, err = Sections(GroupGeneral)
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "Branding", ss[0].Title)
	assert.Len(t, ss[0].Fields, 2)
}

func TestDefaults(t *testing.T) {
	values, err := Defaults(GroupHomePage, map[Name]any{NameCompanyName: "Acme", NameStatus: nil})
	require.NoError(t, err)

	assert.Equal(t, "Acme", values[NameCompanyName])
	assert.Equal(t, false, values[NameStatus])
	assert.Contains(t, values, NameEmail)
	assert.Nil(t, values[NameEmail])
	assert.Len(t, values, 9)

	_, err = Defaults("unknown", nil)
	require.ErrorIs(t, err, ErrUnknownGroup)
}
