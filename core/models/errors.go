package models

import "errors"

// Connection profile errors
var (
	ErrBrokersRequired     = errors.New("kafka brokers are required")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrCertificateRequired = errors.New("CA, client certificate and client key are required")
	ErrOAuthConfigRequired = errors.New("token endpoint URL, client id and client secret are required")
	ErrUnknownAuthType     = errors.New("unknown auth type")
)

// Producer session errors
var (
	ErrSessionKeyRequired = errors.New("session id is required")
)

// Replication snapshot errors
var (
	ErrTopicNotFound = errors.New("topic not found")
)
