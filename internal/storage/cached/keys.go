package cached

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velikovic/inkwell/pkg/ttlcache"
)

// Query keys identify cached reads by (operation, parameters).
const (
	KeyArticles    = "articles"
	KeyAllArticles = "allArticles"
	KeyMostPopular = "mostPopular"
	KeyMostRecent  = "mostRecent"
	KeySearch      = "articleSearch:"
	KeyCategories  = "categories"
	KeyAuthors     = "authors"
	KeyTags        = "tags"

	// ArticlePrefix covers every single-article key. A trailing colon in
	// an invalidation entry means "drop the whole prefix".
	ArticlePrefix = "article:"
)

// KeyArticle is the query key for one article by id.
func KeyArticle(id uuid.UUID) string {
	return ArticlePrefix + id.String()
}

// Freshness windows per query shape.
const (
	ListTTL      = 1 * time.Minute
	ArticleTTL   = 5 * time.Minute
	AggregateTTL = 10 * time.Minute
	TaxonomyTTL  = 10 * time.Minute
	SearchTTL    = 1 * time.Minute
)

// Mutation names the write operations the invalidation table covers.
type Mutation string

const (
	ArticleCreate Mutation = "article.create"
	ArticleUpdate Mutation = "article.update"
	ArticleDelete Mutation = "article.delete"
	CategoryWrite Mutation = "category.write"
	AuthorWrite   Mutation = "author.write"
	TagWrite      Mutation = "tag.write"
)

// Invalidations maps each mutation to every query key whose result could
// include the mutated entity. Forgetting a key here is a stale-read-after-
// write bug; the test suite checks each set against the dependent reads.
//
// Taxonomy writes also drop article keys: category names/colors and author
// details ride along in joined article rows.
var Invalidations = map[Mutation][]string{
	ArticleCreate: {KeyArticles, KeyAllArticles, ArticlePrefix, KeyMostPopular, KeyMostRecent, KeySearch},
	ArticleUpdate: {KeyArticles, KeyAllArticles, ArticlePrefix, KeyMostPopular, KeyMostRecent, KeySearch},
	ArticleDelete: {KeyArticles, KeyAllArticles, ArticlePrefix, KeyMostPopular, KeyMostRecent, KeySearch},
	CategoryWrite: {KeyCategories, KeyArticles, KeyAllArticles, ArticlePrefix, KeyMostPopular, KeyMostRecent, KeySearch},
	AuthorWrite:   {KeyAuthors, KeyArticles, KeyAllArticles, ArticlePrefix, KeyMostPopular, KeyMostRecent, KeySearch},
	TagWrite:      {KeyTags},
}

// Invalidate drops every key in the mutation's set. Entries ending in a
// colon are treated as prefixes.
func Invalidate(cache *ttlcache.Cache[any], m Mutation) {
	for _, key := range Invalidations[m] {
		if strings.HasSuffix(key, ":") {
			cache.DeletePrefix(key)
			continue
		}
		cache.Delete(key)
	}
}
