// Package services holds the uploader workflow on top of the RaptorBoost
// client: hash local files, ask the server what it is missing, stream the
// missing bytes and bind the files to names inside a transfer.
package services
