// Package api handles incoming HTTP requests, request decoding and response
// formatting. It acts as an adapter between HTTP clients and the news
// service, translating service results and failures into JSON envelopes and
// status codes.
package api
