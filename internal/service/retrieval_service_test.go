package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/internal/repository"
)

func newRetrievalFixture() (RetrievalService, SubmissionService, *mockStudentRepo, *mockAssignmentRepo) {
	students := newMockStudentRepo()
	assignments := newMockAssignmentRepo()
	repo := &repository.Repository{
		Student:    students,
		Assignment: assignments,
	}
	logger := zap.NewNop()
	return NewRetrievalService(repo, logger), NewSubmissionService(repo, logger), students, assignments
}

func TestFetchRoundTripsBytes(t *testing.T) {
	retrieval, submission, students, _ := newRetrievalFixture()
	enrollStudent(students, 101, 2, 201)

	payload := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>")
	if err := submission.Submit(context.Background(), 101, 201, pdfUpload(payload)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	got, err := retrieval.FetchForStudent(context.Background(), 101, 201)
	if err != nil {
		t.Fatalf("FetchForStudent returned error: %v", err)
	}
	if !bytes.Equal(got.FileData, payload) {
		t.Error("fetched bytes differ from the submitted payload")
	}

	// faculty sees the same bytes with no ownership restriction
	got, err = retrieval.FetchForFaculty(context.Background(), 101, 201)
	if err != nil {
		t.Fatalf("FetchForFaculty returned error: %v", err)
	}
	if !bytes.Equal(got.FileData, payload) {
		t.Error("faculty fetch returned different bytes")
	}
}

func TestFetchRoundTripsEmptyPayload(t *testing.T) {
	retrieval, submission, students, _ := newRetrievalFixture()
	enrollStudent(students, 101, 2, 201)

	upload := pdfUpload([]byte{})
	if err := submission.Submit(context.Background(), 101, 201, upload); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	got, err := retrieval.FetchForStudent(context.Background(), 101, 201)
	if err != nil {
		t.Fatalf("FetchForStudent returned error: %v", err)
	}
	if len(got.FileData) != 0 {
		t.Errorf("fetched %d bytes, want empty payload", len(got.FileData))
	}
}

func TestFetchMissingSubmission(t *testing.T) {
	retrieval, _, students, _ := newRetrievalFixture()
	enrollStudent(students, 101, 2, 201)

	if _, err := retrieval.FetchForStudent(context.Background(), 101, 201); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("FetchForStudent error = %v, want ErrAssignmentNotFound", err)
	}
	if _, err := retrieval.FetchForFaculty(context.Background(), 999, 201); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("FetchForFaculty error = %v, want ErrAssignmentNotFound", err)
	}
}

func TestListSubmittedSortedByRoll(t *testing.T) {
	retrieval, submission, students, _ := newRetrievalFixture()
	enrollStudent(students, 103, 2, 201)
	enrollStudent(students, 101, 2, 201)
	enrollStudent(students, 102, 2, 201)

	for _, roll := range []int{103, 101} {
		if err := submission.Submit(context.Background(), roll, 201, pdfUpload([]byte("x"))); err != nil {
			t.Fatalf("Submit(%d) returned error: %v", roll, err)
		}
	}

	submitted, err := retrieval.ListSubmitted(context.Background(), 201)
	if err != nil {
		t.Fatalf("ListSubmitted returned error: %v", err)
	}
	if len(submitted) != 2 {
		t.Fatalf("submitted count = %d, want 2", len(submitted))
	}
	if submitted[0].RollNumber != 101 || submitted[1].RollNumber != 103 {
		t.Errorf("submitted order = [%d %d], want [101 103]",
			submitted[0].RollNumber, submitted[1].RollNumber)
	}
	for _, s := range submitted {
		if s.Code != 201 {
			t.Errorf("entry for roll %d has code %d, want 201", s.RollNumber, s.Code)
		}
	}
}

func TestListNotSubmittedTracksFlagExactly(t *testing.T) {
	retrieval, submission, students, _ := newRetrievalFixture()
	enrollStudent(students, 101, 2, 201, 202)
	enrollStudent(students, 102, 2, 201, 202)

	if err := submission.Submit(context.Background(), 102, 201, pdfUpload([]byte("x"))); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	// 102 submitted for 201 but not for 202
	pending, err := retrieval.ListNotSubmitted(context.Background(), 201)
	if err != nil {
		t.Fatalf("ListNotSubmitted(201) returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].RollNumber != 101 {
		t.Errorf("pending for 201 = %+v, want only roll 101", pending)
	}

	pending, err = retrieval.ListNotSubmitted(context.Background(), 202)
	if err != nil {
		t.Fatalf("ListNotSubmitted(202) returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending count for 202 = %d, want 2", len(pending))
	}
	if pending[0].RollNumber != 101 || pending[1].RollNumber != 102 {
		t.Errorf("pending order = [%d %d], want [101 102]",
			pending[0].RollNumber, pending[1].RollNumber)
	}
}

func TestListNotSubmittedAllSubmitted(t *testing.T) {
	retrieval, submission, students, _ := newRetrievalFixture()
	enrollStudent(students, 101, 2, 201)
	enrollStudent(students, 102, 2, 201)

	for _, roll := range []int{101, 102} {
		if err := submission.Submit(context.Background(), roll, 201, pdfUpload([]byte("x"))); err != nil {
			t.Fatalf("Submit(%d) returned error: %v", roll, err)
		}
	}

	if _, err := retrieval.ListNotSubmitted(context.Background(), 201); !errors.Is(err, ErrAllSubmitted) {
		t.Errorf("ListNotSubmitted error = %v, want ErrAllSubmitted", err)
	}
}
