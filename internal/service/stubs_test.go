package service

import (
	"context"

	"vitrine/internal/model"
	"vitrine/internal/repository"
)

// In-memory repository stubs shared by the service tests.

// ── UserRepository ───────────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[string]*model.User // by openId
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Upsert(_ context.Context, u *model.User, updateCols []string) error {
	existing, ok := r.users[u.OpenID]
	if !ok {
		r.nextID++
		nu := *u
		nu.ID = r.nextID
		if nu.Role == "" {
			nu.Role = model.RoleUser // column default
		}
		r.users[u.OpenID] = &nu
		return nil
	}
	for _, col := range updateCols {
		switch col {
		case "last_signed_in":
			existing.LastSignedIn = u.LastSignedIn
		case "name":
			existing.Name = u.Name
		case "email":
			existing.Email = u.Email
		case "login_method":
			existing.LoginMethod = u.LoginMethod
		case "role":
			existing.Role = u.Role
		}
	}
	return nil
}

func (r *stubUserRepo) FindByOpenID(_ context.Context, openID string) (*model.User, error) {
	u, ok := r.users[openID]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[int64]*model.Cliente
	nextID   int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[int64]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) (*model.Cliente, error) {
	r.nextID++
	nc := *c
	nc.ID = r.nextID
	r.clientes[nc.ID] = &nc
	out := nc
	return &out, nil
}

func (r *stubClienteRepo) FindByUsuarioID(_ context.Context, usuarioID int64) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.UsuarioID == usuarioID {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── FornecedorRepository ─────────────────────────────────────────────────────

type stubFornecedorRepo struct {
	fornecedores map[int64]*model.Fornecedor
	nextID       int64
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: make(map[int64]*model.Fornecedor)}
}

func (r *stubFornecedorRepo) Create(_ context.Context, f *model.Fornecedor) (*model.Fornecedor, error) {
	r.nextID++
	nf := *f
	nf.ID = r.nextID
	r.fornecedores[nf.ID] = &nf
	out := nf
	return &out, nil
}

func (r *stubFornecedorRepo) FindByUsuarioID(_ context.Context, usuarioID int64) (*model.Fornecedor, error) {
	for _, f := range r.fornecedores {
		if f.UsuarioID == usuarioID {
			out := *f
			return &out, nil
		}
	}
	return nil, nil
}

func (r *stubFornecedorRepo) FindAtivo(_ context.Context) (*model.Fornecedor, error) {
	var best *model.Fornecedor
	for _, f := range r.fornecedores {
		if f.Ativo && (best == nil || f.ID < best.ID) {
			best = f
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── ProdutoRepository ────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[int64]*model.Produto
	nextID   int64
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[int64]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) (*model.Produto, error) {
	r.nextID++
	np := *p
	np.ID = r.nextID
	r.produtos[np.ID] = &np
	out := np
	return &out, nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id int64) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *stubProdutoRepo) ListByFornecedorID(_ context.Context, fornecedorID int64) ([]model.Produto, error) {
	result := []model.Produto{}
	for _, p := range r.produtos {
		if p.FornecedorID == fornecedorID && p.Ativo {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProdutoRepo) UpdateCampos(_ context.Context, id int64, campos map[string]interface{}) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	for col, v := range campos {
		switch col {
		case "nome":
			p.Nome = v.(string)
		case "descricao":
			d := v.(string)
			p.Descricao = &d
		case "preco":
			p.Preco = v.(int64)
		case "imagem":
			img := v.(string)
			p.Imagem = &img
		case "estoque":
			p.Estoque = v.(int64)
		case "ativo":
			p.Ativo = v.(bool)
		}
	}
	out := *p
	return &out, nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── PedidoRepository ─────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[int64]*model.Pedido
	nextID  int64
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int64]*model.Pedido)}
}

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) (*model.Pedido, error) {
	r.nextID++
	np := *p
	np.ID = r.nextID
	r.pedidos[np.ID] = &np
	out := np
	return &out, nil
}

func (r *stubPedidoRepo) ListByClienteID(_ context.Context, clienteID int64) ([]model.Pedido, error) {
	result := []model.Pedido{}
	for _, p := range r.pedidos {
		if p.ClienteID == clienteID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubPedidoRepo) ListByFornecedorID(_ context.Context, fornecedorID int64) ([]model.Pedido, error) {
	result := []model.Pedido{}
	for _, p := range r.pedidos {
		if p.FornecedorID == fornecedorID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubPedidoRepo) UpdateStatus(_ context.Context, id int64, status string) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	p.Status = status
	out := *p
	return &out, nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)
