// Package httpapi exposes registration screens as a JSON API.
//
// A client opens a session (one screen), sets fields one by one and receives
// the live validation state after each change, then submits. Alerts the
// screen shows and the route it navigates to are returned in the submit
// response.
//
//	POST   /registration/sessions
//	PUT    /registration/sessions/{id}/fields/{field}   {"value": "..."}
//	GET    /registration/sessions/{id}
//	POST   /registration/sessions/{id}/submit
//	DELETE /registration/sessions/{id}
//	GET    /registration/schema
//	GET    /users
//	GET    /health/live, /health/ready
package httpapi
