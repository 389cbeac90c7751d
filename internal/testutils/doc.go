// Package testutils provides testing utilities for studyaid.
//
// # Fake study service
//
// FakeStudyService is an httptest server routed with chi that speaks the
// study service's wire protocol. By default it serves healthy, valid
// responses for every endpoint and keeps created projects in memory:
//
//	fake := testutils.NewFakeStudyService(t)
//	client, err := studyapi.NewClient(config.ServiceConfig{
//	    BaseURL: fake.URL(),
//	    Timeout: time.Second,
//	}, nil)
//
// Individual routes can be overridden with canned replies or handlers:
//
//	fake.Respond(http.MethodPost, "/blurt", http.StatusServiceUnavailable,
//	    `{"detail": "Groq API key not configured"}`)
//
// Every request is recorded and can be inspected with Requests.
//
// # Sample payloads
//
// SampleMnemonicsJSON, SampleFlashcardsJSON and SampleBlurtJSON are valid
// "result" payloads; Envelope wraps one the way the service does.
package testutils
