package test_helpers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// EC2 query API actions served by FakeEC2Server
const (
	DescribeSecurityGroupsAction        = "DescribeSecurityGroups"
	CreateSecurityGroupAction           = "CreateSecurityGroup"
	AuthorizeSecurityGroupIngressAction = "AuthorizeSecurityGroupIngress"
)

type FakePermission struct {
	Protocol string
	FromPort int64
	ToPort   int64
	CIDR     string
}

type FakeSecurityGroup struct {
	ID          string
	Name        string
	Description string
	Permissions []FakePermission
}

// FakeEC2Server speaks enough of the EC2 query protocol for the security group
// driver. It keeps groups in memory and records every action it receives.
type FakeEC2Server struct {
	*httptest.Server

	mutex    sync.Mutex
	groups   []FakeSecurityGroup
	actions  []string
	failures map[string]string
	nextID   int
}

func NewFakeEC2Server() *FakeEC2Server {
	s := &FakeEC2Server{failures: map[string]string{}}
	s.Server = httptest.NewServer(s)
	return s
}

// AddGroup seeds a group and returns its id
func (s *FakeEC2Server) AddGroup(name, description string, permissions ...FakePermission) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.addGroup(name, description, permissions)
}

func (s *FakeEC2Server) Group(name string) (FakeSecurityGroup, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexByName(name)
	if i < 0 {
		return FakeSecurityGroup{}, false
	}
	return s.groups[i], true
}

func (s *FakeEC2Server) Actions() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]string{}, s.actions...)
}

// FailAction makes every later call to action answer with the given EC2 error code
func (s *FakeEC2Server) FailAction(action, code string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.failures[action] = code
}

func (s *FakeEC2Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := r.ParseForm(); err != nil {
		writeError(w, "MalformedQueryString", err.Error())
		return
	}

	action := r.Form.Get("Action")
	s.actions = append(s.actions, action)

	if code, ok := s.failures[action]; ok {
		writeError(w, code, "injected failure")
		return
	}

	switch action {
	case DescribeSecurityGroupsAction:
		s.describe(w)
	case CreateSecurityGroupAction:
		s.create(w, r)
	case AuthorizeSecurityGroupIngressAction:
		s.authorize(w, r)
	default:
		writeError(w, "InvalidAction", fmt.Sprintf("unsupported action %q", action))
	}
}

func (s *FakeEC2Server) describe(w http.ResponseWriter) {
	resp := describeResponse{RequestID: "fake-request"}
	for _, g := range s.groups {
		item := groupItem{GroupID: g.ID, GroupName: g.Name, Description: g.Description}
		for _, p := range g.Permissions {
			item.Permissions = append(item.Permissions, permissionItem{
				Protocol: p.Protocol,
				FromPort: p.FromPort,
				ToPort:   p.ToPort,
				Ranges:   []rangeItem{{CIDR: p.CIDR}},
			})
		}
		resp.Groups = append(resp.Groups, item)
	}
	writeXML(w, resp)
}

func (s *FakeEC2Server) create(w http.ResponseWriter, r *http.Request) {
	name := r.Form.Get("GroupName")
	if s.indexByName(name) >= 0 {
		writeError(w, "InvalidGroup.Duplicate", fmt.Sprintf("The security group '%s' already exists", name))
		return
	}

	id := s.addGroup(name, r.Form.Get("GroupDescription"), nil)
	writeXML(w, createResponse{RequestID: "fake-request", GroupID: id})
}

func (s *FakeEC2Server) authorize(w http.ResponseWriter, r *http.Request) {
	i := s.indexByID(r.Form.Get("GroupId"))
	if i < 0 {
		i = s.indexByName(r.Form.Get("GroupName"))
	}
	if i < 0 {
		writeError(w, "InvalidGroup.NotFound", "The security group does not exist")
		return
	}

	fromPort, _ := strconv.ParseInt(r.Form.Get("IpPermissions.1.FromPort"), 10, 64)
	toPort, _ := strconv.ParseInt(r.Form.Get("IpPermissions.1.ToPort"), 10, 64)
	permission := FakePermission{
		Protocol: r.Form.Get("IpPermissions.1.IpProtocol"),
		FromPort: fromPort,
		ToPort:   toPort,
		CIDR:     r.Form.Get("IpPermissions.1.IpRanges.1.CidrIp"),
	}

	for _, existing := range s.groups[i].Permissions {
		if existing == permission {
			writeError(w, "InvalidPermission.Duplicate", "the specified rule already exists")
			return
		}
	}

	s.groups[i].Permissions = append(s.groups[i].Permissions, permission)
	writeXML(w, authorizeResponse{RequestID: "fake-request", Return: true})
}

func (s *FakeEC2Server) addGroup(name, description string, permissions []FakePermission) string {
	s.nextID++
	id := fmt.Sprintf("sg-%08d", s.nextID)
	s.groups = append(s.groups, FakeSecurityGroup{
		ID:          id,
		Name:        name,
		Description: description,
		Permissions: permissions,
	})
	return id
}

func (s *FakeEC2Server) indexByName(name string) int {
	for i := range s.groups {
		if s.groups[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *FakeEC2Server) indexByID(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.groups {
		if s.groups[i].ID == id {
			return i
		}
	}
	return -1
}

type describeResponse struct {
	XMLName   xml.Name    `xml:"DescribeSecurityGroupsResponse"`
	RequestID string      `xml:"requestId"`
	Groups    []groupItem `xml:"securityGroupInfo>item"`
}

type groupItem struct {
	GroupID     string           `xml:"groupId"`
	GroupName   string           `xml:"groupName"`
	Description string           `xml:"groupDescription"`
	Permissions []permissionItem `xml:"ipPermissions>item"`
}

type permissionItem struct {
	Protocol string      `xml:"ipProtocol"`
	FromPort int64       `xml:"fromPort"`
	ToPort   int64       `xml:"toPort"`
	Ranges   []rangeItem `xml:"ipRanges>item"`
}

type rangeItem struct {
	CIDR string `xml:"cidrIp"`
}

type createResponse struct {
	XMLName   xml.Name `xml:"CreateSecurityGroupResponse"`
	RequestID string   `xml:"requestId"`
	GroupID   string   `xml:"groupId"`
}

type authorizeResponse struct {
	XMLName   xml.Name `xml:"AuthorizeSecurityGroupIngressResponse"`
	RequestID string   `xml:"requestId"`
	Return    bool     `xml:"return"`
}

type errorResponse struct {
	XMLName   xml.Name `xml:"Response"`
	Code      string   `xml:"Errors>Error>Code"`
	Message   string   `xml:"Errors>Error>Message"`
	RequestID string   `xml:"RequestID"`
}

func writeXML(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "text/xml;charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	encode(w, v)
}

func writeError(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "text/xml;charset=UTF-8")
	w.WriteHeader(http.StatusBadRequest)
	encode(w, errorResponse{Code: code, Message: message, RequestID: "fake-request"})
}

// encode panics on failure. net/http drops the connection, so the SDK call
// under test fails instead of decoding a truncated body.
func encode(w http.ResponseWriter, v interface{}) {
	err := xml.NewEncoder(w).Encode(v)
	if err != nil {
		panic(fmt.Sprintf("fake EC2 server: encoding %T: %s", v, err))
	}
}
