// Package service holds application logic that sits between the HTTP
// handlers and the platform clients.
package service
