package settings

import (
	"testing"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	return NewService(testutil.NewTestDB(t))
}

func TestService_Get_CreatesDefaultsOnce(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "My Tech Blog", first.BlogTitle)
	assert.NotEmpty(t, first.ID)

	// A second read returns the same document, not a new one.
	second, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, svc.db.Model(&models.SettingsModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestService_Update_PartialFields(t *testing.T) {
	svc := newTestService(t)

	title := "Inkstone"
	got, err := svc.Update(&UpdateSettingsDTO{BlogTitle: &title})
	require.NoError(t, err)

	assert.Equal(t, "Inkstone", got.BlogTitle)
	// Untouched fields keep their defaults.
	assert.Equal(t, "Author Name", got.AuthorName)
}

func TestService_Update_SocialLinksMergePerKey(t *testing.T) {
	svc := newTestService(t)

	twitter := "https://twitter.com/someone"
	_, err := svc.Update(&UpdateSettingsDTO{SocialLinks: &SocialLinksDTO{Twitter: &twitter}})
	require.NoError(t, err)

	// A later update of another key must not clear the first one.
	github := "https://github.com/someone"
	got, err := svc.Update(&UpdateSettingsDTO{SocialLinks: &SocialLinksDTO{GitHub: &github}})
	require.NoError(t, err)

	require.NotNil(t, got.SocialLinks.Twitter)
	assert.Equal(t, twitter, *got.SocialLinks.Twitter)
	require.NotNil(t, got.SocialLinks.GitHub)
	assert.Equal(t, github, *got.SocialLinks.GitHub)
	assert.Nil(t, got.SocialLinks.LinkedIn)
}
