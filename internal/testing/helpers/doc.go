// Package helpers provides HTTP request builders and response assertions
// shared by handler and acceptance tests.
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/quiz").
//	    WithPass(secret).
//	    WithBody(map[string]interface{}{"title": "Q"}).
//	    Do(mux)
//	helpers.AssertError(t, rr, http.StatusBadRequest, model.MsgInvalidOptions)
package helpers
