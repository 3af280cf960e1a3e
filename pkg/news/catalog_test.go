package news

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, 5, len(cats))
	assert.Equal(t, CategoryAll, cats[0].ID)
	assert.Equal(t, "Government Schemes", cats[1].NameEn)
	assert.Equal(t, CategoryGeneral, cats[4].ID)

	cats[0].NameEn = "changed"
	assert.Equal(t, "All News", Categories()[0].NameEn)
}

func TestResources(t *testing.T) {
	res := Resources()
	assert.Equal(t, 3, len(res))
	assert.Equal(t, "https://ikhedut.gujarat.gov.in/", res[0].URL)
	assert.Equal(t, "Agricultural market information", res[2].Description)
}
