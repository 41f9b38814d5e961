package configs

// Storage configures the S3-compatible bucket holding cached creative assets.
// Endpoint and UsePathStyle are only needed for non-AWS providers such as
// MinIO. When AccessKeyID is empty the default AWS credential chain is used.
// When PublicBaseURL is set, objects are served from it (e.g. a CDN in front
// of the bucket) instead of through presigned URLs.
type Storage struct {
	Bucket          string `env:"BUCKET" envDefault:"creative-assets"`
	Region          string `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"ENDPOINT"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE" envDefault:"false"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
}
