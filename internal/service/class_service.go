package service

import (
	"errors"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// ClassService 班级、成员与班级共享单词集
type ClassService struct {
	classRepo     *repository.ClassRepository
	classUserRepo *repository.ClassUserRepository
	classDocRepo  *repository.ClassDocumentRepository
	listRepo      *repository.DocumentListRepository
	userRepo      *repository.UserRepository
}

func NewClassService(
	classRepo *repository.ClassRepository,
	classUserRepo *repository.ClassUserRepository,
	classDocRepo *repository.ClassDocumentRepository,
	listRepo *repository.DocumentListRepository,
	userRepo *repository.UserRepository,
) *ClassService {
	return &ClassService{
		classRepo:     classRepo,
		classUserRepo: classUserRepo,
		classDocRepo:  classDocRepo,
		listRepo:      listRepo,
		userRepo:      userRepo,
	}
}

func (s *ClassService) CreateClass(class *model.ClassEntity) error {
	return s.classRepo.Create(class)
}

func (s *ClassService) GetClassByID(id uint) (*model.ClassEntity, error) {
	class, err := s.classRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *ClassService) GetClassesByOwner(userID uint) ([]model.ClassEntity, error) {
	return s.classRepo.FindByOwner(userID)
}

func (s *ClassService) GetClassesPaged(keyword string, page, size int) ([]model.ClassEntity, int64, error) {
	return s.classRepo.FindAllPaged(keyword, page, size)
}

func (s *ClassService) UpdateClass(class *model.ClassEntity) error {
	return s.classRepo.Update(class)
}

func (s *ClassService) DeleteClass(id uint) error {
	if _, err := s.GetClassByID(id); err != nil {
		return err
	}
	return s.classRepo.Delete(id)
}

// JoinClass 凭口令加入班级。口令明文比对，与原始行为保持一致。
func (s *ClassService) JoinClass(classID, userID uint, password string) error {
	class, err := s.GetClassByID(classID)
	if err != nil {
		return err
	}

	if class.Password != password {
		return util.ErrWrongClassPassword
	}

	if _, err := s.classUserRepo.FindByClassAndUser(classID, userID); err == nil {
		return util.ErrAlreadyInClass
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.classUserRepo.Create(&model.ClassUser{
		ClassID:  classID,
		UserID:   userID,
		JoinedAt: time.Now(),
	})
}

func (s *ClassService) LeaveClass(classID, userID uint) error {
	return s.classUserRepo.DeleteByClassAndUser(classID, userID)
}

// GetClassMembers 班级成员的用户信息列表
func (s *ClassService) GetClassMembers(classID uint) ([]model.User, error) {
	if _, err := s.GetClassByID(classID); err != nil {
		return nil, err
	}

	members, err := s.classUserRepo.FindByClass(classID)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(members))
	for _, member := range members {
		user, uerr := s.userRepo.FindByID(member.UserID)
		if uerr != nil {
			if errors.Is(uerr, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, uerr
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *ClassService) GetUserClasses(userID uint) ([]model.ClassEntity, error) {
	memberships, err := s.classUserRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	classes := make([]model.ClassEntity, 0, len(memberships))
	for _, membership := range memberships {
		class, cerr := s.classRepo.FindByID(membership.ClassID)
		if cerr != nil {
			if errors.Is(cerr, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, cerr
		}
		classes = append(classes, *class)
	}
	return classes, nil
}

func (s *ClassService) GetMemberCount(classID uint) (int64, error) {
	return s.classUserRepo.CountByClass(classID)
}

// ShareListToClass 将单词集共享到班级，重复共享幂等
func (s *ClassService) ShareListToClass(classID, listID uint) error {
	if _, err := s.GetClassByID(classID); err != nil {
		return err
	}
	if _, err := s.listRepo.FindByID(listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDocumentListNotFound
		}
		return err
	}

	if _, err := s.classDocRepo.FindByClassAndList(classID, listID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.classDocRepo.Create(&model.ClassDocumentList{
		ClassID:  classID,
		ListID:   listID,
		SharedAt: time.Now(),
	})
}

func (s *ClassService) UnshareListFromClass(classID, listID uint) error {
	return s.classDocRepo.DeleteByClassAndList(classID, listID)
}

// GetClassLists 班级内共享的全部单词集
func (s *ClassService) GetClassLists(classID uint) ([]model.DocumentList, error) {
	if _, err := s.GetClassByID(classID); err != nil {
		return nil, err
	}

	shared, err := s.classDocRepo.FindByClass(classID)
	if err != nil {
		return nil, err
	}

	lists := make([]model.DocumentList, 0, len(shared))
	for _, share := range shared {
		list, lerr := s.listRepo.FindByID(share.ListID)
		if lerr != nil {
			if errors.Is(lerr, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, lerr
		}
		lists = append(lists, *list)
	}
	return lists, nil
}
