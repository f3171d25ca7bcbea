package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
)

// Client 联系人服务的 HTTP 客户端。
// 服务端返回的 message 原样作为错误文本向上传递，
// 由状态层展示成单条可关闭的提示。
type Client struct {
	base string
	http *hzclient.Client
}

func New(base string) (*Client, error) {
	cli, err := hzclient.NewClient()
	if err != nil {
		return nil, err
	}

	return &Client{
		base: strings.TrimRight(base, "/"),
		http: cli,
	}, nil
}

// List 拉取全量联系人快照
func (c *Client) List(ctx context.Context) ([]model.Contact, error) {
	body, err := c.do(ctx, consts.MethodGet, "/api/contacts", nil, consts.StatusOK)
	if err != nil {
		return nil, err
	}

	var contacts []model.Contact
	if err := sonic.Unmarshal(body, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contact list: %w", err)
	}
	return contacts, nil
}

// Create 创建联系人，返回带服务端分配 id 的记录
func (c *Client) Create(ctx context.Context, req dto.CreateContactRequest) (*model.Contact, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, consts.MethodPost, "/api/contacts", payload, consts.StatusCreated)
	if err != nil {
		return nil, err
	}

	var contact model.Contact
	if err := sonic.Unmarshal(body, &contact); err != nil {
		return nil, fmt.Errorf("failed to decode created contact: %w", err)
	}
	return &contact, nil
}

// Update 整体替换一条联系人记录
func (c *Client) Update(ctx context.Context, id int64, req dto.UpdateContactRequest) (*model.Contact, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, consts.MethodPut, fmt.Sprintf("/api/contacts/%d", id), payload, consts.StatusOK)
	if err != nil {
		return nil, err
	}

	var contact model.Contact
	if err := sonic.Unmarshal(body, &contact); err != nil {
		return nil, fmt.Errorf("failed to decode updated contact: %w", err)
	}
	return &contact, nil
}

// Delete 删除联系人
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, consts.MethodDelete, fmt.Sprintf("/api/contacts/%d", id), nil, consts.StatusNoContent)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, wantStatus int) ([]byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(c.base + path)
	if payload != nil {
		req.SetBody(payload)
		req.Header.SetContentTypeBytes([]byte("application/json"))
	}

	if err := c.http.Do(ctx, req, resp); err != nil {
		return nil, err
	}

	if resp.StatusCode() != wantStatus {
		return nil, decodeError(resp.Body())
	}

	// 返回体在 Release 后会被复用，拷贝一份
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// decodeError 解析不出 message 时退回通用提示
func decodeError(body []byte) error {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return errors.New(parsed.Message)
	}
	return errors.New("Request failed")
}
