package config

import "os"

// ApplyEnv fills S3 settings from S3_BUCKET, S3_KEY, S3_REGION, S3_ENDPOINT,
// S3_ACCESS_KEY and S3_SECRET_KEY. Unset variables leave the config alone.
func ApplyEnv(cfg *Config) {
	s3 := &cfg.Output.S3
	for name, field := range map[string]*string{
		"S3_BUCKET":     &s3.Bucket,
		"S3_KEY":        &s3.Key,
		"S3_REGION":     &s3.Region,
		"S3_ENDPOINT":   &s3.Endpoint,
		"S3_ACCESS_KEY": &s3.AccessKey,
		"S3_SECRET_KEY": &s3.SecretKey,
	} {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*field = value
		}
	}
}
