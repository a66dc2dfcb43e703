package translation

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"go.uber.org/zap"
)

type libreTranslateClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewLibreTranslateClient(internalConfig *config.InternalConfig, log *zap.Logger) contracts.Translator {
	return &libreTranslateClient{
		BaseUrl: internalConfig.Translation.BaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Translation.TimeoutSeconds) * time.Second,
		},
		Log: log,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// TranslateToEnglish returns the English rendering of Arabic text. Any
// failure falls back to the source text so writes never block on the
// translation provider.
func (c *libreTranslateClient) TranslateToEnglish(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "ar",
		Target: "en",
		Format: "text",
	})
	if err != nil {
		c.Log.Warn(constvars.ErrDevTranslationFailed, zap.Error(err))
		return text
	}

	url := fmt.Sprintf("%s/translate", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.Log.Warn(constvars.ErrDevCreateHTTPRequest, zap.Error(err))
		return text
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn(constvars.ErrDevSendHTTPRequest, zap.Error(err))
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn(constvars.ErrDevTranslationFailed, zap.Int("status_code", resp.StatusCode))
		return text
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.Log.Warn(constvars.ErrDevDecodeResponseBody, zap.Error(err))
		return text
	}
	if result.TranslatedText == "" {
		return text
	}
	return result.TranslatedText
}
