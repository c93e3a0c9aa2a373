package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BIND_ADDRESS = "0.0.0.0:8080"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"

	// File manager access. Empty ACCESS_PASSWORD disables the gate entirely (open mode).
	ACCESS_PASSWORD = ""
	// OPEN_DOWNLOADS restores the lenient routing where bare GET downloads and
	// previews skip the login check even when a password is configured.
	OPEN_DOWNLOADS = false

	MYSQL_DSN   = ""            // MySQL will be used if this is set
	SQLITE_FILE = "cloudbox.db" // SQLite will be used if MYSQL_DSN is not configured

	DEFAULT_BUCKET_DIR = "./data" // Used for creating the initial bucket
	TMP_DIR            = "/tmp"
	S3_BUCKET          = "" // S3 will be used for the initial bucket if this is set
	S3_REGION          = "us-east-1"
	S3_ENDPOINT        = "" // Optional, for S3-compatible stores (R2, MinIO, etc)
	S3_KEY             = ""
	S3_SECRET          = ""

	MAX_UPLOAD_SIZE = int64(100 * 1024 * 1024) // per file, in bytes

	DEBUG_MODE = true
)

func init() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("ACCESS_PASSWORD", &ACCESS_PASSWORD)
	readEnvBool("OPEN_DOWNLOADS", &OPEN_DOWNLOADS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_KEY", &S3_KEY)
	readEnvString("S3_SECRET", &S3_SECRET)
	readEnvInt64("MAX_UPLOAD_SIZE", &MAX_UPLOAD_SIZE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt64(name string, value *int64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return
	}
	*value = i
}
