// Package profilecallback relays identity-lifecycle events (profile
// updates, email changes, account deletions, selected custom verification
// actions) from a host identity provider to externally configured webhook
// endpoints as canonical JSON notifications.
//
// The listener is a library — embed it into the host's event listener SPI.
// Endpoints are resolved once at initialization from a flat key/value
// configuration space ("callbackTo", "timeout", "authHeaderName",
// "authHeaderValue", unsuffixed or numbered 1..10) and notifications are
// posted to every endpoint in order, each with its own timeout and auth
// header, one attempt per event. Delivery is best-effort: one endpoint's
// failure never affects the others, and no error ever reaches the host.
//
// Quick start:
//
//	l, err := profilecallback.New(
//	    profilecallback.WithUserLookup(users),
//	    profilecallback.WithScope(scope.Map{
//	        "callbackTo": "https://backend.example.com/hook",
//	        "timeout":    "5000",
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	l.OnEvent(ctx, &event.Event{
//	    Kind:   event.KindUpdateProfile,
//	    UserID: "3fa85f64-5717-4562-b3fc-2c963f66afa6",
//	})
package profilecallback
