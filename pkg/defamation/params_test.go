package defamation

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecentPageQuery(t *testing.T) {
	if got := RecentPageQuery(25, "q"); got != (PageQuery{Page: 0, Size: 25, Q: "q"}) {
		t.Fatalf("RecentPageQuery(25) = %#v", got)
	}
	if got := RecentPageQuery(-3, ""); got.Size != DefaultLimit || got.Page != 0 {
		t.Fatalf("RecentPageQuery(-3) = %#v", got)
	}
}

func TestPageQueryParamsAlwaysCarriesQ(t *testing.T) {
	got := PageQuery{Size: 10}.Params()
	want := map[string]string{"page": "0", "size": "10", "q": ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Params = %#v, want %#v", got, want)
	}
}

func TestPredictRequestOmitsMissingModelID(t *testing.T) {
	raw, err := json.Marshal(PredictRequest{Inputs: "sample"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"inputs":"sample"}` {
		t.Fatalf("body = %s", raw)
	}

	id := int64(0)
	raw, err = json.Marshal(PredictRequest{ModelID: &id, Inputs: "sample"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"modelId":0,"inputs":"sample"}` {
		t.Fatalf("body = %s", raw)
	}
}
