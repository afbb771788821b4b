// Package api handles incoming HTTP requests for the social media service:
// routing, path and body validation, and response formatting. Handlers are
// thin adapters over service.UserService; every error goes through
// HandleAPIError so clients only ever see a status code and a safe message.
package api
