// Package catalog talks to the remote theme catalog, an Appwrite-style
// REST service. Theme documents live in a database collection; bundle
// files live in a storage bucket.
//
// Requests carry the project id and API key headers and are retried on
// connection errors and 5xx responses.
package catalog
