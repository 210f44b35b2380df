package service

import (
	"testing"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClassService(db *gorm.DB) *ClassService {
	return NewClassService(
		repository.NewClassRepository(db),
		repository.NewClassUserRepository(db),
		repository.NewClassDocumentRepository(db),
		repository.NewDocumentListRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedClass(t *testing.T, db *gorm.DB, ownerID uint, name, password string) *model.ClassEntity {
	t.Helper()
	class := &model.ClassEntity{
		ClassName: name,
		UserID:    ownerID,
		Password:  password,
	}
	require.NoError(t, db.Create(class).Error)
	return class
}

func TestJoinClass(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	student := seedUser(t, db, "박학생", "student@example.com")
	class := seedClass(t, db, teacher.ID, "초급 한국어 1반", "tiger123")

	require.NoError(t, svc.JoinClass(class.ID, student.ID, "tiger123"))

	var membership model.ClassUser
	require.NoError(t, db.Where("class_id = ? AND user_id = ?", class.ID, student.ID).First(&membership).Error)
	assert.False(t, membership.JoinedAt.IsZero())
}

func TestJoinClassWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	student := seedUser(t, db, "박학생", "student@example.com")
	class := seedClass(t, db, teacher.ID, "초급 한국어 1반", "tiger123")

	err := svc.JoinClass(class.ID, student.ID, "wrong")
	assert.ErrorIs(t, err, util.ErrWrongClassPassword)

	var count int64
	db.Model(&model.ClassUser{}).Count(&count)
	assert.Zero(t, count)
}

func TestJoinClassTwice(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	student := seedUser(t, db, "박학생", "student@example.com")
	class := seedClass(t, db, teacher.ID, "초급 한국어 1반", "tiger123")

	require.NoError(t, svc.JoinClass(class.ID, student.ID, "tiger123"))
	err := svc.JoinClass(class.ID, student.ID, "tiger123")
	assert.ErrorIs(t, err, util.ErrAlreadyInClass)
}

func TestJoinClassNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	student := seedUser(t, db, "박학생", "student@example.com")

	err := svc.JoinClass(999, student.ID, "tiger123")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestLeaveClassAndMemberCount(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	a := seedUser(t, db, "학생A", "a@example.com")
	b := seedUser(t, db, "학생B", "b@example.com")
	class := seedClass(t, db, teacher.ID, "중급 한국어", "pw")

	require.NoError(t, svc.JoinClass(class.ID, a.ID, "pw"))
	require.NoError(t, svc.JoinClass(class.ID, b.ID, "pw"))

	count, err := svc.GetMemberCount(class.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.LeaveClass(class.ID, a.ID))

	count, err = svc.GetMemberCount(class.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetClassMembers(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	a := seedUser(t, db, "학생A", "a@example.com")
	b := seedUser(t, db, "학생B", "b@example.com")
	class := seedClass(t, db, teacher.ID, "중급 한국어", "pw")

	require.NoError(t, svc.JoinClass(class.ID, a.ID, "pw"))
	require.NoError(t, svc.JoinClass(class.ID, b.ID, "pw"))

	members, err := svc.GetClassMembers(class.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	emails := []string{members[0].Email, members[1].Email}
	assert.Contains(t, emails, "a@example.com")
	assert.Contains(t, emails, "b@example.com")
}

func TestGetClassMembersClassNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	_, err := svc.GetClassMembers(999)
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestGetUserClasses(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	student := seedUser(t, db, "박학생", "student@example.com")
	first := seedClass(t, db, teacher.ID, "1반", "pw1")
	second := seedClass(t, db, teacher.ID, "2반", "pw2")
	seedClass(t, db, teacher.ID, "3반", "pw3")

	require.NoError(t, svc.JoinClass(first.ID, student.ID, "pw1"))
	require.NoError(t, svc.JoinClass(second.ID, student.ID, "pw2"))

	classes, err := svc.GetUserClasses(student.ID)
	require.NoError(t, err)
	require.Len(t, classes, 2)

	names := []string{classes[0].ClassName, classes[1].ClassName}
	assert.ElementsMatch(t, []string{"1반", "2반"}, names)
}

func TestShareListToClassIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	class := seedClass(t, db, teacher.ID, "1반", "pw")
	list := seedList(t, db, teacher.ID, "수업 단어장", "vocabulary", 1)

	require.NoError(t, svc.ShareListToClass(class.ID, list.ID))
	require.NoError(t, svc.ShareListToClass(class.ID, list.ID))

	var count int64
	db.Model(&model.ClassDocumentList{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestShareListToClassListNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	class := seedClass(t, db, teacher.ID, "1반", "pw")

	err := svc.ShareListToClass(class.ID, 999)
	assert.ErrorIs(t, err, util.ErrDocumentListNotFound)
}

func TestGetClassListsAfterUnshare(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	class := seedClass(t, db, teacher.ID, "1반", "pw")
	first := seedList(t, db, teacher.ID, "단어장 하나", "vocabulary", 1)
	second := seedList(t, db, teacher.ID, "단어장 둘", "vocabulary", 1)

	require.NoError(t, svc.ShareListToClass(class.ID, first.ID))
	require.NoError(t, svc.ShareListToClass(class.ID, second.ID))

	lists, err := svc.GetClassLists(class.ID)
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	require.NoError(t, svc.UnshareListFromClass(class.ID, first.ID))

	lists, err = svc.GetClassLists(class.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "단어장 둘", lists[0].Title)
}

func TestDeleteClass(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)
	teacher := seedUser(t, db, "김선생", "teacher@example.com")
	class := seedClass(t, db, teacher.ID, "1반", "pw")

	require.NoError(t, svc.DeleteClass(class.ID))

	_, err := svc.GetClassByID(class.ID)
	assert.ErrorIs(t, err, util.ErrClassNotFound)
	assert.ErrorIs(t, svc.DeleteClass(class.ID), util.ErrClassNotFound)
}
