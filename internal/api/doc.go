// Package api handles incoming HTTP requests for todos and cat facts,
// decodes request bodies, and formats responses. It translates HTTP
// concerns to calls on the internal services.
package api
