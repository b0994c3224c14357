// Package api maps portal domain values to and from the gRPC wire messages
// generated in internal/proto.
package api

import (
	"time"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	pb "github.com/dmitrijs2005/gophportal/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ServiceName is the fully qualified PortalService name, also used as the
// health-check service key.
const ServiceName = "gophportal.PortalService"

// WatchReadyHeader is sent as stream header metadata once a Watch
// subscription is live.
const WatchReadyHeader = "x-watch-ready"

func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func IdentityToProto(id domain.Identity) *pb.Identity {
	return &pb.Identity{UserId: id.UserID, Email: id.Email, Role: string(id.Role)}
}

func IdentityFromProto(p *pb.Identity) domain.Identity {
	return domain.Identity{UserID: p.GetUserId(), Email: p.GetEmail(), Role: domain.Role(p.GetRole())}
}

// TenantToProto copies t including its member list; callers strip members
// before sending a tenant to a client.
func TenantToProto(t domain.Tenant) *pb.Tenant {
	return &pb.Tenant{
		Code: t.Code,
		Name: t.Name,
		Theme: &pb.Theme{
			Primary:    t.Theme.Primary,
			Secondary:  t.Theme.Secondary,
			Accent:     t.Theme.Accent,
			Background: t.Theme.Background,
		},
		Members: t.Members,
	}
}

func TenantFromProto(p *pb.Tenant) domain.Tenant {
	th := p.GetTheme()
	return domain.Tenant{
		Code: p.GetCode(),
		Name: p.GetName(),
		Theme: domain.Theme{
			Primary:    th.GetPrimary(),
			Secondary:  th.GetSecondary(),
			Accent:     th.GetAccent(),
			Background: th.GetBackground(),
		},
		Members: p.GetMembers(),
	}
}

func TenantsToProto(ts []domain.Tenant) []*pb.Tenant {
	out := make([]*pb.Tenant, 0, len(ts))
	for _, t := range ts {
		out = append(out, TenantToProto(t))
	}
	return out
}

func TenantsFromProto(ps []*pb.Tenant) []domain.Tenant {
	out := make([]domain.Tenant, 0, len(ps))
	for _, p := range ps {
		out = append(out, TenantFromProto(p))
	}
	return out
}

func SubmissionToProto(s domain.Submission) *pb.Submission {
	return &pb.Submission{
		Id:          s.ID,
		ClientId:    s.OwnerID,
		ClientName:  s.Tenant,
		Title:       s.Title,
		Description: s.Description,
		FileUrl:     s.AttachmentRef,
		Status:      string(s.Status),
		CreatedAt:   timeToProto(s.CreatedAt),
	}
}

func SubmissionFromProto(p *pb.Submission) domain.Submission {
	return domain.Submission{
		ID:            p.GetId(),
		OwnerID:       p.GetClientId(),
		Tenant:        p.GetClientName(),
		Title:         p.GetTitle(),
		Description:   p.GetDescription(),
		AttachmentRef: p.GetFileUrl(),
		Status:        domain.Status(p.GetStatus()),
		CreatedAt:     timeFromProto(p.GetCreatedAt()),
	}
}

func SubmissionsToProto(rows []domain.Submission) []*pb.Submission {
	out := make([]*pb.Submission, 0, len(rows))
	for _, r := range rows {
		out = append(out, SubmissionToProto(r))
	}
	return out
}

// SubmissionsFromProto never returns nil.
func SubmissionsFromProto(ps []*pb.Submission) []domain.Submission {
	out := make([]domain.Submission, 0, len(ps))
	for _, p := range ps {
		out = append(out, SubmissionFromProto(p))
	}
	return out
}

func StatusChangesToProto(cs []domain.StatusChange) []*pb.StatusChange {
	out := make([]*pb.StatusChange, 0, len(cs))
	for _, c := range cs {
		out = append(out, &pb.StatusChange{
			SubmissionId: c.SubmissionID,
			FromStatus:   string(c.From),
			ToStatus:     string(c.To),
			ChangedBy:    c.ChangedBy,
			ChangedAt:    timeToProto(c.ChangedAt),
		})
	}
	return out
}

func StatusChangesFromProto(ps []*pb.StatusChange) []domain.StatusChange {
	out := make([]domain.StatusChange, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.StatusChange{
			SubmissionID: p.GetSubmissionId(),
			From:         domain.Status(p.GetFromStatus()),
			To:           domain.Status(p.GetToStatus()),
			ChangedBy:    p.GetChangedBy(),
			ChangedAt:    timeFromProto(p.GetChangedAt()),
		})
	}
	return out
}

func ChangeToProto(c domain.Change) *pb.Change {
	return &pb.Change{Op: string(c.Op), Id: c.ID, ClientId: c.OwnerID, ClientName: c.Tenant}
}

func ChangeFromProto(p *pb.Change) domain.Change {
	return domain.Change{
		Op:      domain.ChangeOp(p.GetOp()),
		ID:      p.GetId(),
		OwnerID: p.GetClientId(),
		Tenant:  p.GetClientName(),
	}
}
