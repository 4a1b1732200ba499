package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jumpaku/go-survey/errors"
	"google.golang.org/api/drive/v3"
)

const (
	granteeTypeUser   = "user"
	granteeTypeGroup  = "group"
	granteeTypeDomain = "domain"
	granteeTypeAnyone = "anyone"
)

type Role string

const (
	RoleOwner     Role = "owner"
	RoleWriter    Role = "writer"
	RoleCommenter Role = "commenter"
	RoleReader    Role = "reader"
)

// Grantee is who a published form is shared with.
// This is a sealed interface - use the constructor functions User, Group, Domain, or Anyone.
type Grantee interface {
	doNotImplement(Grantee)
}

func User(email string) Grantee {
	return GranteeUser{Email: email}
}

func Group(email string) Grantee {
	return GranteeGroup{Email: email}
}

func Domain(domain string) Grantee {
	return GranteeDomain{Domain: domain}
}

func Anyone() Grantee {
	return GranteeAnyone{}
}

type GranteeUser struct {
	Email string
}

func (GranteeUser) doNotImplement(Grantee) {}

type GranteeGroup struct {
	Email string
}

func (GranteeGroup) doNotImplement(Grantee) {}

type GranteeDomain struct {
	Domain string
}

func (GranteeDomain) doNotImplement(Grantee) {}

type GranteeAnyone struct{}

func (GranteeAnyone) doNotImplement(Grantee) {}

// ParseGrantee reads "anyone", "domain:example.com", "group:team@example.com"
// or a plain email address.
func ParseGrantee(s string) (Grantee, error) {
	kind, value, found := strings.Cut(s, ":")
	switch {
	case s == granteeTypeAnyone:
		return Anyone(), nil
	case found && kind == granteeTypeDomain && value != "":
		return Domain(value), nil
	case found && kind == granteeTypeGroup && value != "":
		return Group(value), nil
	case found && kind == granteeTypeUser && value != "":
		return User(value), nil
	case !found && strings.Contains(s, "@"):
		return User(s), nil
	}
	return nil, fmt.Errorf("invalid grantee %q: %w", s, errors.ErrInvalidConfig)
}

type Permission struct {
	Grantee            Grantee
	Role               Role
	AllowFileDiscovery bool
}

func newDrivePermission(p Permission) *drive.Permission {
	perm := &drive.Permission{
		AllowFileDiscovery: p.AllowFileDiscovery,
		Role:               string(p.Role),
	}
	switch grantee := p.Grantee.(type) {
	case GranteeUser:
		perm.Type, perm.EmailAddress = granteeTypeUser, grantee.Email
	case GranteeGroup:
		perm.Type, perm.EmailAddress = granteeTypeGroup, grantee.Email
	case GranteeDomain:
		perm.Type, perm.Domain = granteeTypeDomain, grantee.Domain
	case GranteeAnyone:
		perm.Type = granteeTypeAnyone
	}
	return perm
}

func (c *Client) driveService() (*drive.Service, error) {
	if c.drive == nil {
		return nil, fmt.Errorf("drive service is not configured: %w", errors.ErrInvalidConfig)
	}
	return c.drive, nil
}

// Share grants permission on the form's file.
func (c *Client) Share(ctx context.Context, formID string, permission Permission) (err error) {
	service, err := c.driveService()
	if err != nil {
		return err
	}
	_, err = service.Permissions.Create(formID, newDrivePermission(permission)).
		SupportsAllDrives(true).
		SendNotificationEmail(false).
		Context(ctx).
		Do()
	if err != nil {
		return newAPIError("failed to share form "+formID, err)
	}
	return nil
}

// MoveTo moves the form's file into folderID, detaching it from its current
// parents.
func (c *Client) MoveTo(ctx context.Context, formID, folderID string) (err error) {
	service, err := c.driveService()
	if err != nil {
		return err
	}
	f, err := service.Files.Get(formID).
		SupportsAllDrives(true).
		Fields("id,parents").
		Context(ctx).
		Do()
	if err != nil {
		return newAPIError("failed to get form file "+formID, err)
	}
	_, err = service.Files.Update(formID, &drive.File{}).
		AddParents(folderID).
		RemoveParents(strings.Join(f.Parents, ",")).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return newAPIError("failed to move form "+formID, err)
	}
	return nil
}
