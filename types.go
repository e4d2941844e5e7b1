package seoengine

// Document is a fully assembled blog post: frontmatter metadata, the raw
// Markdown body, and the sanitized HTML rendered from it. Documents are
// read-only value objects rebuilt from the content source on every read.
type Document struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Date           string          `json:"date"`
	Excerpt        string          `json:"excerpt"`
	Category       string          `json:"category"`
	Tags           []string        `json:"tags"`
	CoverImage     string          `json:"coverImage"`
	Author         string          `json:"author"`
	AuthorImage    string          `json:"authorImage"`
	AuthorBio      string          `json:"authorBio"`
	Content        string          `json:"content"`
	HTMLContent    string          `json:"htmlContent"`
	ReadingTime    string          `json:"readingTime"`
	AffiliateLinks []AffiliateLink `json:"affiliateLinks,omitempty"`
}

// AffiliateLink is an embedded product link carried in frontmatter.
type AffiliateLink struct {
	ID          string `json:"id" yaml:"id"`
	URL         string `json:"url" yaml:"url"`
	Platform    string `json:"platform" yaml:"platform"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Price       string `json:"price,omitempty" yaml:"price"`
	Discount    string `json:"discount,omitempty" yaml:"discount"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single SEO rule violation for one page (or the whole corpus
// for duplicate titles).
type Issue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Page     string `json:"page,omitempty"`
	Severity string `json:"severity"`
}

// Stats aggregates rule violations across the corpus, counting posts rather
// than individual issues. A single post can increment several counters, but
// each counter at most once.
type Stats struct {
	TotalPosts       int `json:"totalPosts"`
	PostsWithIssues  int `json:"postsWithIssues"`
	MissingMetadata  int `json:"missingMetadata"`
	ShortContent     int `json:"shortContent"`
	PostsWithoutTags int `json:"postsWithoutTags"`
	MissingImages    int `json:"missingImages"`
}

// Report is the output of a full SEO validation run.
type Report struct {
	Errors []Issue `json:"errors"`
	Stats  Stats   `json:"stats"`
}

// ReadabilityResult is the outcome of scoring a single document.
type ReadabilityResult struct {
	Score        float64  `json:"score"`
	ReadingLevel string   `json:"readingLevel"`
	Suggestions  []string `json:"suggestions"`
}
