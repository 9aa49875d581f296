package recommendation

import (
	"reflect"
	"testing"

	"dineWise/domain"
)

const testShareKey = "0123456789abcdef0123456789abcdef"

func TestShareCodecRoundTrip(t *testing.T) {
	codec := NewShareCodec(testShareKey)

	req := domain.RecommendationRequest{
		Location:   "BTM",
		PriceRange: []string{"$", "$$"},
		MinRating:  4.0,
		Cuisines:   []string{"Chinese"},
		Limit:      5,
	}

	token, err := codec.Encode(req)
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	decoded, err := codec.Decode(token)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, req) {
		t.Errorf("decoded = %+v, want %+v", decoded, req)
	}
}

func TestShareCodecRejectsGarbage(t *testing.T) {
	codec := NewShareCodec(testShareKey)

	if _, err := codec.Decode("not-a-real-token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestShareCodecKeyMismatch(t *testing.T) {
	token, err := NewShareCodec(testShareKey).Encode(domain.RecommendationRequest{Location: "BTM"})
	if err != nil {
		t.Fatal(err)
	}

	other := NewShareCodec("fedcba9876543210fedcba9876543210")
	if _, err := other.Decode(token); err == nil {
		t.Error("token from another key should not decode")
	}
}
