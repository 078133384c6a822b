package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notice is the single user-facing message produced for an operation.
type Notice struct {
	Severity    Severity
	Message     string
	Retryable   bool
	Remediation string
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s", n.Severity, n.Message)
}

// SetupSQL creates the presentations table and the anonymous access policies
// the client relies on.
const SetupSQL = `create table if not exists public.presentations (
  id uuid default gen_random_uuid() primary key,
  created_at timestamp with time zone default timezone('utc'::text, now()) not null,
  title text,
  author text,
  date text,
  slides numeric,
  content jsonb,
  meta jsonb,
  active boolean default false
);

alter table public.presentations add column if not exists meta jsonb;

alter table public.presentations enable row level security;

create policy "Allow public read access" on public.presentations
  for select using (true);
create policy "Allow public insert access" on public.presentations
  for insert with check (true);
create policy "Allow public update access" on public.presentations
  for update using (true);
create policy "Allow public delete access" on public.presentations
  for delete using (true);`

// NoticeFor converts the outcome of a user-initiated action into a notice.
func NoticeFor(action string, err error) Notice {
	switch {
	case err == nil:
		return Notice{Severity: SeverityInfo, Message: action + " completed"}
	case errors.Is(err, common.ErrSchemaMissing):
		return Notice{
			Severity:    SeverityError,
			Message:     action + " failed: the presentations table is missing or out of date; run the setup script in the database SQL editor",
			Remediation: SetupSQL,
		}
	case errors.Is(err, common.ErrPermissionDenied):
		return Notice{
			Severity:    SeverityError,
			Message:     action + " failed: the store's row-level security policy denied the operation; check the access policies",
			Remediation: SetupSQL,
		}
	case errors.Is(err, common.ErrGeneratorRejected):
		return Notice{
			Severity: SeverityError,
			Message:  action + " failed: the slide generator rejected the API key; check the Gemini key",
		}
	case errors.Is(err, common.ErrGeneratorUnavailable):
		return Notice{
			Severity:  SeverityWarning,
			Message:   action + " failed: the slide generator is unavailable; try again later",
			Retryable: true,
		}
	case errors.Is(err, common.ErrConnectivity):
		return Notice{
			Severity:  SeverityWarning,
			Message:   action + " failed: the store is unreachable; check the connection and try again",
			Retryable: true,
		}
	case errors.Is(err, common.ErrNotFound):
		return Notice{
			Severity: SeverityWarning,
			Message:  action + " failed: the presentation no longer exists; refresh the list",
		}
	case errors.Is(err, common.ErrValidation):
		return Notice{Severity: SeverityWarning, Message: action + " failed: " + err.Error()}
	default:
		return Notice{Severity: SeverityError, Message: action + " failed: " + err.Error(), Retryable: true}
	}
}
