package configs

// Archive configures where run records are written. Files are always
// written to Dir; the object store is used when MinioEndpoint is set.
type Archive struct {
	Dir string `env:"DIR" envDefault:"./results"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"pixel-match"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"true"`
}
