package defamation

import "github.com/samvad-hq/defamation-console/pkg/httpclient"

// Requester aliases the shared httpclient.Requester for clarity within the adapter.
type Requester = httpclient.Requester
