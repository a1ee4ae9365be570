package viewstate

import (
	"sync"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Store хранилище снапшотов доступности с явным владением чтением/записью.
//
// Два механизма защиты согласованности локального состояния:
//
//  1. Счётчик поколений на дату. Каждый fetch начинается с Begin, публикация
//     результата принимается только если её поколение не устарело - поздний
//     ответ вытесненного запроса не перезаписывает более свежее состояние.
//
//  2. Двухфазное обновление при записи бронирования. MarkTentative помечает
//     стол занятым до подтверждения удалённым хранилищем; Confirm фиксирует
//     пометку, Rollback возвращает стол в исходное состояние.
//
// Снапшоты эфемерны: это кэш представления, перезаписываемый каждым refetch,
// никакой долговременной персистентности здесь нет.
type Store struct {
	mu      sync.Mutex
	entries map[types.DateString]*entry
}

type entry struct {
	issued    uint64 // последнее выданное поколение fetch
	published uint64 // поколение опубликованного снапшота
	snapshot  *domain.Availability
	tentative map[int]domain.DeskStatus // deskID -> состояние до пометки
}

// NewStore создает пустое хранилище снапшотов
func NewStore() *Store {
	return &Store{
		entries: make(map[types.DateString]*entry),
	}
}

func (s *Store) entryFor(date types.DateString) *entry {
	e, ok := s.entries[date]
	if !ok {
		e = &entry{tentative: make(map[int]domain.DeskStatus)}
		s.entries[date] = e
	}
	return e
}

// Begin выдает поколение для начинающегося fetch доступности на дату
func (s *Store) Begin(date types.DateString) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryFor(date)
	e.issued++
	return e.issued
}

// Publish публикует снапшот, полученный fetch'ем с поколением generation.
// Возвращает false и не меняет состояние, если снапшот устарел: после начала
// этого fetch'а был опубликован результат более позднего.
func (s *Store) Publish(date types.DateString, generation uint64, availability domain.Availability) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryFor(date)
	if generation <= e.published {
		return false
	}

	snapshot := copyAvailability(availability)
	e.published = generation
	e.snapshot = &snapshot
	e.tentative = make(map[int]domain.DeskStatus)
	return true
}

// Snapshot возвращает копию опубликованного снапшота даты
func (s *Store) Snapshot(date types.DateString) (domain.Availability, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[date]
	if !ok || e.snapshot == nil {
		return domain.Availability{}, false
	}
	return copyAvailability(*e.snapshot), true
}

// MarkTentative помечает стол занятым пользователем до подтверждения записи
// удалённым хранилищем. Исходное состояние стола запоминается для отката.
func (s *Store) MarkTentative(date types.DateString, deskID int, occupant domain.Occupant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[date]
	if !ok || e.snapshot == nil {
		return ErrNoSnapshot
	}

	for i := range e.snapshot.Desks {
		status := &e.snapshot.Desks[i]
		if status.Desk.ID != deskID {
			continue
		}
		if !status.IsAvailable() {
			return ErrDeskNotAvailable
		}

		e.tentative[deskID] = *status
		status.Status = domain.DeskBooked
		status.Occupant = &domain.Occupant{Email: occupant.Email, Name: occupant.Name}
		return nil
	}

	return ErrDeskNotFound
}

// Confirm фиксирует предварительную пометку после успешной записи
func (s *Store) Confirm(date types.DateString, deskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[date]
	if !ok {
		return ErrNoSnapshot
	}
	if _, ok := e.tentative[deskID]; !ok {
		return ErrNotTentative
	}
	delete(e.tentative, deskID)
	return nil
}

// Rollback откатывает предварительную пометку после неудачной записи,
// возвращая стол в состояние до MarkTentative
func (s *Store) Rollback(date types.DateString, deskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[date]
	if !ok {
		return ErrNoSnapshot
	}

	prior, ok := e.tentative[deskID]
	if !ok {
		return ErrNotTentative
	}
	delete(e.tentative, deskID)

	if e.snapshot == nil {
		return nil
	}
	for i := range e.snapshot.Desks {
		if e.snapshot.Desks[i].Desk.ID == deskID {
			e.snapshot.Desks[i] = prior
			break
		}
	}
	return nil
}

// Invalidate сбрасывает снапшот даты. Следующее чтение доступности
// обязано выполнить свежий fetch.
func (s *Store) Invalidate(date types.DateString) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[date]
	if !ok {
		return
	}
	e.snapshot = nil
	e.tentative = make(map[int]domain.DeskStatus)
}

func copyAvailability(a domain.Availability) domain.Availability {
	desks := make([]domain.DeskStatus, len(a.Desks))
	copy(desks, a.Desks)
	for i := range desks {
		if desks[i].Occupant != nil {
			occ := *desks[i].Occupant
			desks[i].Occupant = &occ
		}
	}
	return domain.Availability{Date: a.Date, Desks: desks}
}
