package recommendation

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/pobyzaarif/goshortcute"

	"dineWise/domain"
	"dineWise/pkg/logger"
)

const shareTokenTTL = 7 * 24 * time.Hour

type sharePayload struct {
	Request domain.RecommendationRequest `json:"request"`
	ExpAt   int64                        `json:"exp_at"`
}

// ShareCodec turns a recommendation request into an opaque shareable token
// and back. Tokens are AES-CBC encrypted with the app share key and
// base64 encoded so they survive URLs.
type ShareCodec struct {
	shareKey string
}

func NewShareCodec(shareKey string) *ShareCodec {
	return &ShareCodec{shareKey: shareKey}
}

func (c *ShareCodec) Encode(req domain.RecommendationRequest) (string, error) {
	payload := sharePayload{
		Request: req.Normalized(),
		ExpAt:   time.Now().Add(shareTokenTTL).Unix(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	encrypted, err := goshortcute.AESCBCEncrypt(raw, []byte(c.shareKey))
	if err != nil {
		logger.Error("error when encrypt share token", err)
		return "", errors.New("failed to create share token")
	}

	return goshortcute.StringtoBase64Encode(encrypted), nil
}

func (c *ShareCodec) Decode(token string) (domain.RecommendationRequest, error) {
	strDecode := goshortcute.StringtoBase64Decode(token)
	decrypted, err := goshortcute.AESCBCDecrypt([]byte(strDecode), []byte(c.shareKey))
	if err != nil {
		logger.Error("error when decrypt share token", err)
		return domain.RecommendationRequest{}, errors.New("invalid or expired share token")
	}

	var payload sharePayload
	if err := json.Unmarshal([]byte(decrypted), &payload); err != nil {
		logger.Error("error when parse share token", err)
		return domain.RecommendationRequest{}, errors.New("invalid or expired share token")
	}

	if time.Now().After(time.Unix(payload.ExpAt, 0)) {
		return domain.RecommendationRequest{}, errors.New("invalid or expired share token")
	}

	return payload.Request, nil
}
